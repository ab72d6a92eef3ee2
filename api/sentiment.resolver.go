package api

import (
	"fmt"

	"papertrade/internal/sentiment"

	"github.com/gin-gonic/gin"
)

type SentimentRequest struct {
	Text  string   `json:"text"`
	Texts []string `json:"texts"`
}

type SentimentResponse struct {
	Result *sentiment.Result     `json:"result,omitempty"`
	Bulk   *sentiment.BulkResult `json:"bulk,omitempty"`
	Label  string                `json:"label"`
}

func (m ApiHandler) analyzeSentiment(c *gin.Context) {
	var requestBody SentimentRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid request: %w", err), c, 400)
		return
	}

	if len(requestBody.Texts) > 0 {
		bulk := sentiment.AnalyzeBulk(requestBody.Texts)
		c.JSON(200, SentimentResponse{
			Bulk:  &bulk,
			Label: sentiment.Label(bulk.AverageScore),
		})
		return
	}

	result := sentiment.Analyze(requestBody.Text)
	c.JSON(200, SentimentResponse{
		Result: &result,
		Label:  sentiment.Label(result.Score),
	})
}
