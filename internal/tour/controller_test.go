package tour

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dorilab/dori/internal/model"
	"github.com/dorilab/dori/internal/speech"
)

type spokenLine struct {
	Text string
	Lang string
}

type fakeSpeaker struct {
	lines []spokenLine
}

func (f *fakeSpeaker) Speak(_ context.Context, text string, lang string) {
	f.lines = append(f.lines, spokenLine{Text: text, Lang: lang})
}

func (f *fakeSpeaker) texts() []string {
	out := make([]string, 0, len(f.lines))
	for _, l := range f.lines {
		out = append(out, l.Text)
	}
	return out
}

// fakeListener pops scripted transcripts; an exhausted queue means silence.
type fakeListener struct {
	queue []string
	calls int
}

func (f *fakeListener) Listen(_ context.Context, _ string, _ float64) string {
	f.calls++
	if len(f.queue) == 0 {
		return ""
	}
	head := f.queue[0]
	f.queue = f.queue[1:]
	return head
}

type fakeWake struct{ det *speech.WakeDetector }

func (f fakeWake) Match(text, lang string) bool { return f.det.Match(text, lang) }

type fakeBridge struct {
	toPivotErr   error
	fromPivotErr error
	translateErr error
	toPivotCalls []string
}

func (f *fakeBridge) Translate(_ context.Context, text string, src string, tgt string) (string, error) {
	if f.translateErr != nil {
		return "", f.translateErr
	}
	if src == tgt {
		return text, nil
	}
	return "[" + tgt + "]" + text, nil
}

func (f *fakeBridge) ToPivot(_ context.Context, q string, src string) (string, error) {
	f.toPivotCalls = append(f.toPivotCalls, q)
	if f.toPivotErr != nil {
		return "", f.toPivotErr
	}
	if src == "en" {
		return q, nil
	}
	return "[en]" + q, nil
}

func (f *fakeBridge) FromPivot(_ context.Context, a string, tgt string) (string, error) {
	if f.fromPivotErr != nil {
		return "", f.fromPivotErr
	}
	if tgt == "en" {
		return a, nil
	}
	return "[" + tgt + "]" + a, nil
}

type fakeAnswerer struct {
	answers   []string
	questions []string
	spots     []string
}

func (f *fakeAnswerer) Answer(_ context.Context, question string, spotCode string) string {
	f.questions = append(f.questions, question)
	f.spots = append(f.spots, spotCode)
	if len(f.answers) == 0 {
		return "I don't have that information."
	}
	head := f.answers[0]
	if len(f.answers) > 1 {
		f.answers = f.answers[1:]
	}
	return head
}

type fakeScripts struct {
	bySpotLang map[string][]*model.ScriptParagraph
}

func (f *fakeScripts) ListBySpot(_ context.Context, spotID int64, language string) ([]*model.ScriptParagraph, error) {
	return f.bySpotLang[fmt.Sprintf("%d/%s", spotID, language)], nil
}

type fakePhotographer struct {
	key   string
	err   error
	calls int
}

func (f *fakePhotographer) TakePhoto(_ context.Context) (string, error) {
	f.calls++
	return f.key, f.err
}

func noSleep(_ context.Context, _ time.Duration) {}

func testRoute() []*model.Spot {
	return []*model.Spot{
		{ID: 1, Code: "gwanghwamun", NameEN: "Gwanghwamun Gate", Names: map[string]string{"ko": "광화문"}, OrderNo: 1},
		{ID: 2, Code: "gyeonghoeru", NameEN: "Gyeonghoeru Pavilion", OrderNo: 2, IsPhotoSpot: true},
	}
}

func testScripts() *fakeScripts {
	return &fakeScripts{bySpotLang: map[string][]*model.ScriptParagraph{
		"1/en": {
			{ID: 1, SpotID: 1, OrderInSpot: 1, Language: "en", Text: "Gwanghwamun is the main gate."},
			{ID: 2, SpotID: 1, OrderInSpot: 2, Language: "en", Text: "It was restored several times."},
		},
		"2/en": {
			{ID: 3, SpotID: 2, OrderInSpot: 1, Language: "en", Text: "Gyeonghoeru is a pavilion over a pond."},
		},
	}}
}

func newTestController(speaker *fakeSpeaker, listener *fakeListener, bridge *fakeBridge,
	answerer *fakeAnswerer, photographer Photographer, cfg ControllerConfig) *Controller {
	c := NewController(testScripts(), speaker, listener, fakeWake{det: speech.NewWakeDetector()},
		bridge, answerer, photographer, cfg)
	c.sleep = noSleep
	return c
}

func TestTourSilenceAtEverySpot(t *testing.T) {
	speaker := &fakeSpeaker{}
	listener := &fakeListener{} // always silence
	photographer := &fakePhotographer{key: "photos/1.jpg"}
	ctl := newTestController(speaker, listener, &fakeBridge{}, &fakeAnswerer{}, photographer, ControllerConfig{})
	session := NewSession("en", testRoute())

	ctl.RunTour(context.Background(), session)

	texts := speaker.texts()
	require.Contains(t, texts, Phrase(PhraseTourStartWelcome, "en"))
	require.Contains(t, texts, "We have arrived at Gwanghwamun Gate.")
	require.Contains(t, texts, "Gwanghwamun is the main gate.")
	require.Contains(t, texts, "It was restored several times.")
	// Silence in the QA window speaks the moving-on phrase at both spots.
	silences := 0
	for _, text := range texts {
		if text == Phrase(PhraseQASilence, "en") {
			silences++
		}
	}
	require.Equal(t, 2, silences)
	// Photo flow ran at the flagged spot.
	require.Equal(t, 1, photographer.calls)
	require.Contains(t, texts, Phrase(PhrasePhotoShot, "en"))
	require.Contains(t, texts, Phrase(PhrasePhotoSaved, "en"))
	require.Contains(t, texts, Phrase(PhraseTourEnd, "en"))
	require.Equal(t, StateTourComplete, session.State())
}

func TestQAPassAdvancesWithoutAnswering(t *testing.T) {
	speaker := &fakeSpeaker{}
	// First QA window: pass word. Everything else silence.
	listener := &fakeListener{queue: []string{"", "", "no thank you"}}
	answerer := &fakeAnswerer{}
	ctl := newTestController(speaker, listener, &fakeBridge{}, answerer, nil, ControllerConfig{})
	session := NewSession("en", testRoute()[:1])

	ctl.RunTour(context.Background(), session)

	require.Empty(t, answerer.questions)
	require.Contains(t, speaker.texts(), Phrase(PhraseQAPass, "en"))
}

func TestQAPassRequiresWholeWord(t *testing.T) {
	require.True(t, IsPassUtterance("No thanks"))
	require.True(t, IsPassUtterance("pass"))
	require.True(t, IsPassUtterance("패스"))
	require.True(t, IsPassUtterance("không có"))
	require.False(t, IsPassUtterance("I know the answer"))
	require.False(t, IsPassUtterance("nothing special about it?"))
	require.False(t, IsPassUtterance("tell me about the nextdoor building"))
}

func TestQAAnswersQuestionThenSilence(t *testing.T) {
	speaker := &fakeSpeaker{}
	listener := &fakeListener{queue: []string{
		"", "", // wake checks during two narration paragraphs
		"when was kwanghwamun restored", // QA window
	}}
	answerer := &fakeAnswerer{answers: []string{"It was restored in 2010."}}
	bridge := &fakeBridge{}
	ctl := newTestController(speaker, listener, bridge, answerer, nil, ControllerConfig{})
	session := NewSession("en", testRoute()[:1])

	ctl.RunTour(context.Background(), session)

	// Proper noun was normalized before translation.
	require.Equal(t, []string{"when was gwanghwamun restored"}, bridge.toPivotCalls)
	require.Equal(t, []string{"gwanghwamun"}, answerer.spots)
	require.Contains(t, speaker.texts(), "It was restored in 2010.")
	require.Contains(t, speaker.texts(), Phrase(PhraseQAMore, "en"))
}

func TestQATurnCapBoundsLoop(t *testing.T) {
	speaker := &fakeSpeaker{}
	questions := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		questions = append(questions, fmt.Sprintf("question number %d please", i))
	}
	listener := &fakeListener{queue: append([]string{"", ""}, questions...)}
	answerer := &fakeAnswerer{answers: []string{"An answer."}}
	ctl := newTestController(speaker, listener, &fakeBridge{}, answerer, nil, ControllerConfig{MaxQATurns: 3})
	session := NewSession("en", testRoute()[:1])

	ctl.RunTour(context.Background(), session)

	require.Len(t, answerer.questions, 3)
	require.Contains(t, speaker.texts(), Phrase(PhraseQAPass, "en"))
}

func TestWakeInterruptRunsOneInlineExchange(t *testing.T) {
	speaker := &fakeSpeaker{}
	listener := &fakeListener{queue: []string{
		"hey dori",                   // wake check after paragraph 1
		"what is this gate",          // inline question
		"",                           // wake check after paragraph 2
		"",                           // QA window: silence
	}}
	answerer := &fakeAnswerer{answers: []string{"It is Gwanghwamun."}}
	ctl := newTestController(speaker, listener, &fakeBridge{}, answerer, nil, ControllerConfig{})
	session := NewSession("en", testRoute()[:1])

	ctl.RunTour(context.Background(), session)

	require.Equal(t, []string{"what is this gate"}, answerer.questions)
	texts := speaker.texts()
	require.Contains(t, texts, "It is Gwanghwamun.")
	// Narration resumed after the interrupt.
	require.Contains(t, texts, "It was restored several times.")
	restoredIdx := -1
	answerIdx := -1
	for i, text := range texts {
		if text == "It is Gwanghwamun." {
			answerIdx = i
		}
		if text == "It was restored several times." {
			restoredIdx = i
		}
	}
	require.Greater(t, restoredIdx, answerIdx)
}

func TestWakeInterruptCooldownBlocksRetrigger(t *testing.T) {
	speaker := &fakeSpeaker{}
	listener := &fakeListener{queue: []string{
		"hey dori",           // paragraph 1 wake: accepted
		"",                   // inline question: silence
		"hey dori again",     // paragraph 2 wake: blocked by cooldown
		"",                   // QA window silence
	}}
	answerer := &fakeAnswerer{}
	ctl := newTestController(speaker, listener, &fakeBridge{}, answerer, nil,
		ControllerConfig{WakeCooldown: time.Hour})
	session := NewSession("en", testRoute()[:1])

	ctl.RunTour(context.Background(), session)

	// Only one inline exchange was opened (qa_intro twice total: inline + QA loop).
	intros := 0
	for _, text := range speaker.texts() {
		if text == Phrase(PhraseQAIntro, "en") {
			intros++
		}
	}
	require.Equal(t, 2, intros)
}

func TestTranslationFailureSpeaksPivotAnswer(t *testing.T) {
	speaker := &fakeSpeaker{}
	listener := &fakeListener{queue: []string{"", "", "기와 지붕은 무엇인가요"}}
	answerer := &fakeAnswerer{answers: []string{"It is a tiled roof."}}
	bridge := &fakeBridge{fromPivotErr: fmt.Errorf("translation backend down")}
	ctl := newTestController(speaker, listener, bridge, answerer, nil, ControllerConfig{})
	session := NewSession("ko", testRoute()[:1])

	ctl.RunTour(context.Background(), session)

	// The untranslated pivot-language answer was spoken rather than nothing.
	require.Contains(t, speaker.texts(), "It is a tiled roof.")
}

func TestPhotoCaptureFailureSkipsSavedConfirmation(t *testing.T) {
	speaker := &fakeSpeaker{}
	listener := &fakeListener{}
	photographer := &fakePhotographer{err: fmt.Errorf("camera offline")}
	ctl := newTestController(speaker, listener, &fakeBridge{}, &fakeAnswerer{}, photographer, ControllerConfig{})
	session := NewSession("en", testRoute())

	ctl.RunTour(context.Background(), session)

	texts := speaker.texts()
	require.Contains(t, texts, Phrase(PhrasePhotoShot, "en"))
	require.NotContains(t, texts, Phrase(PhrasePhotoSaved, "en"))
	// Tour still finished.
	require.Contains(t, texts, Phrase(PhraseTourEnd, "en"))
}

func TestFallbackScriptTranslatedLive(t *testing.T) {
	speaker := &fakeSpeaker{}
	ctl := newTestController(speaker, &fakeListener{}, &fakeBridge{}, &fakeAnswerer{}, nil, ControllerConfig{})
	session := NewSession("ko", testRoute()[:1])

	ctl.RunTour(context.Background(), session)

	texts := speaker.texts()
	require.Contains(t, texts, "[ko]Gwanghwamun is the main gate.")
	require.Contains(t, texts, "[ko]It was restored several times.")
}

func TestFallbackScriptTranslationFailureNarratesPivot(t *testing.T) {
	speaker := &fakeSpeaker{}
	bridge := &fakeBridge{translateErr: fmt.Errorf("translation backend down")}
	ctl := newTestController(speaker, &fakeListener{}, bridge, &fakeAnswerer{}, nil, ControllerConfig{})
	session := NewSession("ko", testRoute()[:1])

	ctl.RunTour(context.Background(), session)

	require.Contains(t, speaker.texts(), "Gwanghwamun is the main gate.")
}

func TestKoreanSpotNameUsedInArrival(t *testing.T) {
	speaker := &fakeSpeaker{}
	ctl := newTestController(speaker, &fakeListener{}, &fakeBridge{}, &fakeAnswerer{}, nil, ControllerConfig{})
	session := NewSession("ko", testRoute()[:1])

	ctl.RunTour(context.Background(), session)

	found := false
	for _, line := range speaker.lines {
		if strings.Contains(line.Text, "광화문에 도착했습니다") {
			found = true
			require.Equal(t, "ko", line.Lang)
		}
	}
	require.True(t, found)
}
