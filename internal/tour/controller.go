package tour

import (
	"context"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/dorilab/dori/internal/model"
)

// Speaker plays one utterance to completion; failures are swallowed inside.
type Speaker interface {
	Speak(ctx context.Context, text string, lang string)
}

// Listener records for a bounded duration and returns the accepted
// transcript, or "" when nothing usable was heard.
type Listener interface {
	Listen(ctx context.Context, lang string, seconds float64) string
}

// WakeMatcher checks a transcript for the wake phrase.
type WakeMatcher interface {
	Match(text string, lang string) bool
}

// QuestionAnswerer produces the pivot-language answer for a pivot-language
// question. Never fails; backend errors come back as apology text.
type QuestionAnswerer interface {
	Answer(ctx context.Context, question string, spotCode string) string
}

// LanguageBridge translates between the visitor language and the pivot.
type LanguageBridge interface {
	Translate(ctx context.Context, text string, src string, tgt string) (string, error)
	ToPivot(ctx context.Context, question string, src string) (string, error)
	FromPivot(ctx context.Context, answer string, tgt string) (string, error)
}

// ScriptSource lists the narration paragraphs for one spot and language.
type ScriptSource interface {
	ListBySpot(ctx context.Context, spotID int64, language string) ([]*model.ScriptParagraph, error)
}

// Photographer captures and persists one visitor photo, returning the
// stored object's key.
type Photographer interface {
	TakePhoto(ctx context.Context) (string, error)
}

type ControllerConfig struct {
	ListenSeconds       float64
	InlineListenSeconds float64
	WakeListenSeconds   float64
	MaxQATurns          int
	WakeCooldown        time.Duration
	PivotLanguage       string
}

// Controller drives one tour through the per-spot state machine:
// NARRATING, QA_LOOP, PHOTO when flagged, then ADVANCE. Everything runs on
// a single goroutine; speak, listen, think, speak.
type Controller struct {
	scripts      ScriptSource
	speaker      Speaker
	listener     Listener
	wake         WakeMatcher
	bridge       LanguageBridge
	answerer     QuestionAnswerer
	photographer Photographer
	cfg          ControllerConfig
	normalizer   *NounNormalizer

	sleep func(ctx context.Context, d time.Duration)
}

func NewController(scripts ScriptSource, speaker Speaker, listener Listener, wake WakeMatcher,
	bridge LanguageBridge, answerer QuestionAnswerer, photographer Photographer, cfg ControllerConfig) *Controller {
	if cfg.ListenSeconds <= 0 {
		cfg.ListenSeconds = 10
	}
	if cfg.InlineListenSeconds <= 0 {
		cfg.InlineListenSeconds = 6
	}
	if cfg.WakeListenSeconds <= 0 {
		cfg.WakeListenSeconds = 2
	}
	if cfg.MaxQATurns <= 0 {
		cfg.MaxQATurns = 3
	}
	if cfg.WakeCooldown <= 0 {
		cfg.WakeCooldown = 15 * time.Second
	}
	if cfg.PivotLanguage == "" {
		cfg.PivotLanguage = "en"
	}
	return &Controller{
		scripts:      scripts,
		speaker:      speaker,
		listener:     listener,
		wake:         wake,
		bridge:       bridge,
		answerer:     answerer,
		photographer: photographer,
		cfg:          cfg,
		normalizer:   NewNounNormalizer(),
		sleep:        sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) {
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}

// RunTour walks the session's route once, spot by spot, and returns when
// the closing phrase has been spoken or the context is cancelled.
func (c *Controller) RunTour(ctx context.Context, session *Session) {
	logger := logutil.GetLogger(ctx).With(zap.String("lang", session.Language()))
	logger.Info("tour started")

	lang := session.Language()
	c.speaker.Speak(ctx, Phrase(PhraseTourStartWelcome, lang), lang)
	c.sleep(ctx, 300*time.Millisecond)
	c.speaker.Speak(ctx, Phrase(PhraseTourStartMove, lang), lang)
	c.sleep(ctx, 500*time.Millisecond)

	for spot := session.Advance(); spot != nil; spot = session.Advance() {
		if ctx.Err() != nil {
			return
		}
		logger.Info("arrived at spot", zap.String("spot_code", spot.Code))
		c.speaker.Speak(ctx, ArrivedPhrase(lang, spot.Name(lang)), lang)

		session.SetState(StateNarrating)
		c.narrate(ctx, session, spot)

		session.SetState(StateQALoop)
		c.qaLoop(ctx, session, spot)

		if spot.IsPhotoSpot {
			session.SetState(StatePhoto)
			c.photoMode(ctx, session)
		}
		session.SetState(StateAdvance)
	}

	c.speaker.Speak(ctx, Phrase(PhraseTourEnd, lang), lang)
	session.SetState(StateTourComplete)
	logger.Info("tour complete")
}

// narrate reads the spot's script paragraphs in order, checking briefly for
// a wake interrupt after each one. An interrupt runs exactly one ad hoc
// question and resumes with the next paragraph.
func (c *Controller) narrate(ctx context.Context, session *Session, spot *model.Spot) {
	logger := logutil.GetLogger(ctx)
	lang := session.Language()
	paragraphs := c.loadScript(ctx, spot, lang)
	for _, paragraph := range paragraphs {
		if ctx.Err() != nil {
			return
		}
		c.speaker.Speak(ctx, paragraph.Text, lang)
		c.sleep(ctx, 300*time.Millisecond)
		if c.checkWakeInterrupt(ctx, session) {
			logger.Info("narration interrupted by wake phrase", zap.String("spot_code", spot.Code))
			c.inlineQuestion(ctx, session, spot)
		}
		c.sleep(ctx, 200*time.Millisecond)
	}
}

func (c *Controller) loadScript(ctx context.Context, spot *model.Spot, lang string) []*model.ScriptParagraph {
	logger := logutil.GetLogger(ctx)
	paragraphs, err := c.scripts.ListBySpot(ctx, spot.ID, lang)
	if err != nil {
		logger.Error("load script failed", zap.String("spot_code", spot.Code), zap.Error(err))
		return nil
	}
	if len(paragraphs) == 0 && lang != c.cfg.PivotLanguage {
		paragraphs, err = c.scripts.ListBySpot(ctx, spot.ID, c.cfg.PivotLanguage)
		if err != nil {
			logger.Error("load fallback script failed", zap.String("spot_code", spot.Code), zap.Error(err))
			return nil
		}
		// No authored script in the visitor's language: translate the pivot
		// script live. A failed paragraph is narrated in the pivot language.
		translated := make([]*model.ScriptParagraph, 0, len(paragraphs))
		for _, paragraph := range paragraphs {
			copied := *paragraph
			text, err := c.bridge.Translate(ctx, paragraph.Text, c.cfg.PivotLanguage, lang)
			if err != nil {
				logger.Warn("script translation failed, narrating in pivot language",
					zap.String("spot_code", spot.Code), zap.Error(err))
			} else {
				copied.Text = text
				copied.Language = lang
			}
			translated = append(translated, &copied)
		}
		paragraphs = translated
	}
	return paragraphs
}

func (c *Controller) checkWakeInterrupt(ctx context.Context, session *Session) bool {
	text := c.listener.Listen(ctx, session.Language(), c.cfg.WakeListenSeconds)
	if text == "" {
		return false
	}
	if !c.wake.Match(text, session.Language()) {
		return false
	}
	return session.AllowWakeInterrupt(c.cfg.WakeCooldown)
}

// inlineQuestion handles one interrupt exchange: one question, one answer,
// one follow-up prompt, then narration resumes.
func (c *Controller) inlineQuestion(ctx context.Context, session *Session, spot *model.Spot) {
	lang := session.Language()
	c.speaker.Speak(ctx, Phrase(PhraseQAIntro, lang), lang)
	utterance := c.listener.Listen(ctx, lang, c.cfg.InlineListenSeconds)
	if utterance == "" {
		c.speaker.Speak(ctx, Phrase(PhraseQASilence, lang), lang)
		return
	}
	c.answerQuestion(ctx, session, spot.Code, utterance)
	c.speaker.Speak(ctx, Phrase(PhraseQAMore, lang), lang)
}

// qaLoop runs the post-narration question session. Exits on silence, a
// pass-class utterance, or the per-spot turn cap.
func (c *Controller) qaLoop(ctx context.Context, session *Session, spot *model.Spot) {
	logger := logutil.GetLogger(ctx)
	lang := session.Language()
	c.speaker.Speak(ctx, Phrase(PhraseQAIntro, lang), lang)

	for {
		if ctx.Err() != nil {
			return
		}
		utterance := c.listener.Listen(ctx, lang, c.cfg.ListenSeconds)
		if utterance == "" {
			c.speaker.Speak(ctx, Phrase(PhraseQASilence, lang), lang)
			return
		}
		if IsPassUtterance(utterance) {
			c.speaker.Speak(ctx, Phrase(PhraseQAPass, lang), lang)
			return
		}
		c.answerQuestion(ctx, session, spot.Code, utterance)
		if turns := session.NextQATurn(); turns >= c.cfg.MaxQATurns {
			logger.Info("qa turn cap reached", zap.String("spot_code", spot.Code), zap.Int("turns", turns))
			c.speaker.Speak(ctx, Phrase(PhraseQAPass, lang), lang)
			return
		}
		c.sleep(ctx, 300*time.Millisecond)
		c.speaker.Speak(ctx, Phrase(PhraseQAMore, lang), lang)
	}
}

// answerQuestion runs one utterance through the full pipeline: proper-noun
// normalization, translation to the pivot, grounded or ungrounded
// generation, translation back, speech. A failed back-translation speaks
// the pivot-language answer rather than dropping the turn.
func (c *Controller) answerQuestion(ctx context.Context, session *Session, spotCode string, utterance string) {
	logger := logutil.GetLogger(ctx).With(zap.String("spot_code", spotCode))
	lang := session.Language()

	normalized := c.normalizer.Normalize(utterance)
	if normalized != utterance {
		logger.Debug("normalized question", zap.String("from", utterance), zap.String("to", normalized))
	}

	question, err := c.bridge.ToPivot(ctx, normalized, lang)
	if err != nil {
		logger.Warn("question translation failed, using original text", zap.Error(err))
		question = normalized
	}

	answer := c.answerer.Answer(ctx, question, spotCode)

	localized, err := c.bridge.FromPivot(ctx, answer, lang)
	if err != nil {
		logger.Warn("answer translation failed, speaking pivot text", zap.Error(err))
		localized = answer
	}
	c.speaker.Speak(ctx, localized, lang)
}

// photoMode plays the fixed photo sequence with its timed pauses and
// captures a frame at the shutter cue. Capture or storage failures are
// logged and the confirmation is skipped.
func (c *Controller) photoMode(ctx context.Context, session *Session) {
	logger := logutil.GetLogger(ctx)
	lang := session.Language()

	c.speaker.Speak(ctx, Phrase(PhrasePhotoIntro, lang), lang)
	c.sleep(ctx, 500*time.Millisecond)
	c.speaker.Speak(ctx, Phrase(PhrasePhotoPositioning, lang), lang)
	c.sleep(ctx, 1500*time.Millisecond)
	c.speaker.Speak(ctx, Phrase(PhrasePhotoCountdown, lang), lang)
	c.sleep(ctx, 5*time.Second)
	c.speaker.Speak(ctx, Phrase(PhrasePhotoShot, lang), lang)

	if c.photographer == nil {
		return
	}
	key, err := c.photographer.TakePhoto(ctx)
	if err != nil {
		logger.Error("photo capture failed", zap.Error(err))
		return
	}
	logger.Info("photo stored", zap.String("key", key))
	c.sleep(ctx, 500*time.Millisecond)
	c.speaker.Speak(ctx, Phrase(PhrasePhotoSaved, lang), lang)
}
