package anxiety

import "testing"

func TestCalculate(t *testing.T) {
	tests := []struct {
		name      string
		emotions  map[string]float64
		wantScore float64
		wantLevel string
	}{
		{
			name:      "empty map scores zero",
			emotions:  map[string]float64{},
			wantScore: 0,
			wantLevel: LevelLow,
		},
		{
			name:      "missing keys default to zero",
			emotions:  map[string]float64{"happy": 99.9, "angry": 50},
			wantScore: 0,
			wantLevel: LevelLow,
		},
		{
			name:      "just below moderate",
			emotions:  map[string]float64{"fear": 59.98},
			wantScore: 29.99,
			wantLevel: LevelLow,
		},
		{
			name:      "moderate boundary",
			emotions:  map[string]float64{"fear": 60},
			wantScore: 30,
			wantLevel: LevelModerate,
		},
		{
			name:      "just below high",
			emotions:  map[string]float64{"fear": 100, "sad": 33.3},
			wantScore: 59.99,
			wantLevel: LevelModerate,
		},
		{
			name:      "high boundary",
			emotions:  map[string]float64{"fear": 100, "sad": 20, "surprise": 20},
			wantScore: 60,
			wantLevel: LevelHigh,
		},
		{
			name:      "classifier scenario",
			emotions:  map[string]float64{"fear": 70, "sad": 10, "surprise": 5, "happy": 10, "neutral": 5},
			wantScore: 39,
			wantLevel: LevelModerate,
		},
		{
			name:      "rounds to two decimals",
			emotions:  map[string]float64{"fear": 10.007},
			wantScore: 5,
			wantLevel: LevelLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, level := Calculate(tt.emotions)
			if score != tt.wantScore {
				t.Errorf("Calculate() score = %v, want %v", score, tt.wantScore)
			}
			if level != tt.wantLevel {
				t.Errorf("Calculate() level = %q, want %q", level, tt.wantLevel)
			}
		})
	}
}

func TestCalculateWeights(t *testing.T) {
	// 0.5*fear + 0.3*sad + 0.2*surprise
	score, _ := Calculate(map[string]float64{"fear": 10, "sad": 10, "surprise": 10})
	if score != 10 {
		t.Errorf("weights should sum to 1.0 for uniform input, got %v", score)
	}

	score, _ = Calculate(map[string]float64{"fear": 100})
	if score != 50 {
		t.Errorf("fear weight should be 0.5, got %v", score)
	}
	score, _ = Calculate(map[string]float64{"sad": 100})
	if score != 30 {
		t.Errorf("sad weight should be 0.3, got %v", score)
	}
	score, _ = Calculate(map[string]float64{"surprise": 100})
	if score != 20 {
		t.Errorf("surprise weight should be 0.2, got %v", score)
	}
}
