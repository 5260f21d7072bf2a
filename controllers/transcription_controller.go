package controllers

import (
	"io"
	"net/http"

	"github.com/jamiepatterson123/leenaai-sub001/services"
	"github.com/jamiepatterson123/leenaai-sub001/vision"

	"github.com/gin-gonic/gin"
)

// 10 MB is plenty for a voice memo describing a meal.
const maxAudioBytes = 10 << 20

// POST /food/analyze-voice — multipart field "audio". Transcribes the clip
// and runs the transcript through the text analysis path.
func AnalyzeFoodVoice(c *gin.Context) {
	file, header, err := c.Request.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "audio file is required"})
		return
	}
	defer file.Close()

	if header.Size > maxAudioBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "audio file too large"})
		return
	}

	audio, err := io.ReadAll(io.LimitReader(file, maxAudioBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read audio"})
		return
	}

	transcript, err := services.NewTranscriptionService().Transcribe(audio, header.Filename)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "transcription failed"})
		return
	}

	pipeline := vision.NewPipeline(vision.NewClient())
	items, err := pipeline.AnalyzeText(c.Request.Context(), transcript)
	if err != nil {
		respondAnalysisError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transcript": transcript, "items": items})
}
