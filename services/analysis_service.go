package services

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"anxisense_back_end_go/anxiety"
	"anxisense_back_end_go/classifier"
	"anxisense_back_end_go/responses"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AnalyzeFace takes the uploaded image, runs it through the emotion
// classifier and returns the derived anxiety score. The image is written to a
// uniquely named temporary file which is removed on every exit path.
func AnalyzeFace(c *gin.Context, clf *classifier.Client, uploadDir string) {
	file, err := c.FormFile("image")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, "No image uploaded")
		return
	}

	// Nanosecond timestamp plus a UUID so concurrent uploads cannot collide.
	filename := fmt.Sprintf("%d_%s.jpg", time.Now().UnixNano(), uuid.NewString())
	filePath := filepath.Join(uploadDir, filename)

	// Registered before the save so a partially written file is removed too.
	defer func() {
		if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
			log.Printf("Error removing temporary image %s: %v", filePath, err)
		}
	}()

	if err := c.SaveUploadedFile(file, filePath); err != nil {
		log.Printf("Error saving uploaded image: %v", err)
		responses.ServerError(c, err)
		return
	}

	result, err := clf.Analyze(c.Request.Context(), filePath)
	if err != nil {
		log.Printf("Inference failed: %v", err)
		responses.FailWithError(c, http.StatusInternalServerError, "Inference failed", err)
		return
	}

	anxietyScore, anxietyLevel := anxiety.Calculate(result.Emotions)

	log.Printf("Analysis result: dominant=%s score=%.2f level=%s", result.DominantEmotion, anxietyScore, anxietyLevel)

	c.JSON(http.StatusOK, gin.H{
		"success":               true,
		"dominant_emotion":      result.DominantEmotion,
		"emotion_probabilities": result.Emotions,
		"anxiety_score":         anxietyScore,
		"anxiety_level":         anxietyLevel,
	})
}
