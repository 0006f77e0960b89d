package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/dorilab/dori/internal/pkg/errcode"
	"github.com/dorilab/dori/internal/pkg/response"
	"github.com/dorilab/dori/internal/rag"
	"github.com/dorilab/dori/internal/tour"
	"github.com/dorilab/dori/internal/translate"
)

// QAHandler exposes the question pipeline over HTTP for operators and
// integration tests: same normalize/translate/answer path the tour uses,
// minus the microphone and speaker.
type QAHandler struct {
	normalizer *tour.NounNormalizer
	bridge     *translate.Bridge
	answerer   *rag.Answerer
}

func NewQAHandler(normalizer *tour.NounNormalizer, bridge *translate.Bridge, answerer *rag.Answerer) *QAHandler {
	return &QAHandler{normalizer: normalizer, bridge: bridge, answerer: answerer}
}

type askRequest struct {
	Question string `json:"question"`
	Language string `json:"language"`
	SpotCode string `json:"spot_code"`
	// UseRAG overrides the global retrieval toggle for this request. Unset
	// means "use the configured behavior"; false forces an ungrounded answer.
	UseRAG *bool `json:"use_rag"`
}

type askResponse struct {
	Question    string `json:"question"`
	Language    string `json:"language"`
	SpotCode    string `json:"spot_code,omitempty"`
	Answer      string `json:"answer"`
	PivotAnswer string `json:"pivot_answer"`
}

func (h *QAHandler) Ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid request")
		return
	}
	if req.Question == "" {
		response.Error(c, errcode.ErrInvalid, "question is required")
		return
	}
	if req.Language == "" {
		req.Language = translate.PivotLanguage
	}
	if !translate.Supported(req.Language) {
		response.Error(c, errcode.ErrInvalid, "unsupported language")
		return
	}

	ctx := c.Request.Context()
	logger := logutil.GetLogger(ctx).With(
		zap.String("lang", req.Language), zap.String("spot_code", req.SpotCode))

	question := h.normalizer.Normalize(req.Question)
	pivotQuestion, err := h.bridge.ToPivot(ctx, question, req.Language)
	if err != nil {
		logger.Warn("question translation failed, using raw text", zap.Error(err))
		pivotQuestion = question
	}
	var pivotAnswer string
	if req.UseRAG != nil && !*req.UseRAG {
		pivotAnswer = h.answerer.AnswerUngrounded(ctx, pivotQuestion)
	} else {
		pivotAnswer = h.answerer.Answer(ctx, pivotQuestion, req.SpotCode)
	}
	answer, err := h.bridge.FromPivot(ctx, pivotAnswer, req.Language)
	if err != nil {
		logger.Warn("answer translation failed, returning pivot answer", zap.Error(err))
		answer = pivotAnswer
	}

	response.Success(c, askResponse{
		Question:    req.Question,
		Language:    req.Language,
		SpotCode:    req.SpotCode,
		Answer:      answer,
		PivotAnswer: pivotAnswer,
	})
}
