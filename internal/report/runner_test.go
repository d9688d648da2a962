package report

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"SentimentPulse/internal/collector"
	"SentimentPulse/internal/model"
)

type stubRenderer struct {
	aligned *model.AlignedSeries
	path    string
	err     error
}

func (s *stubRenderer) Render(a *model.AlignedSeries, path string) error {
	if s.err != nil {
		return s.err
	}
	s.aligned = a
	s.path = path
	return nil
}

type stubNotifier struct {
	messages []string
	photos   []string
	captions []string
	sendErr  error
}

func (s *stubNotifier) Send(text string) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.messages = append(s.messages, text)
	return nil
}

func (s *stubNotifier) SendPhoto(path, caption string) error {
	s.photos = append(s.photos, path)
	s.captions = append(s.captions, caption)
	return nil
}

type failingSentimentSource struct{ err error }

func (f *failingSentimentSource) Name() string { return "failing" }
func (f *failingSentimentSource) FetchHistory(_ int) ([]model.FearGreedPoint, error) {
	return nil, f.err
}

func testData() (*collector.MockSentimentSource, *collector.MockPriceSource) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	sentiment := &collector.MockSentimentSource{Points: []model.FearGreedPoint{
		{Time: base, Value: 50},
		{Time: base.AddDate(0, 0, 1), Value: 55},
		{Time: base.AddDate(0, 0, 2), Value: 52},
	}}
	prices := &collector.MockPriceSource{Points: []model.PricePoint{
		{Time: base, Price: 60000},
		{Time: base.AddDate(0, 0, 1), Price: 61000},
		{Time: base.AddDate(0, 0, 2), Price: 60500},
	}}
	return sentiment, prices
}

func newRunner(sentiment collector.SentimentSource, prices collector.PriceSource, renderer *stubRenderer, notif *stubNotifier) *Runner {
	return &Runner{
		Collector: collector.NewCollector(sentiment, prices, 3),
		Renderer:  renderer,
		Notifier:  notif,
		ChartPath: "output/test_chart.png",
		Coin:      "bitcoin",
		Log:       zap.NewNop().Sugar(),
	}
}

func TestRunner_EndToEnd(t *testing.T) {
	sentiment, prices := testData()
	renderer := &stubRenderer{}
	notif := &stubNotifier{}

	err := newRunner(sentiment, prices, renderer, notif).Run()
	require.NoError(t, err)

	// Both series moved up on day 2 and down on day 3, so the two return
	// pairs agree in rank order exactly.
	require.Len(t, notif.messages, 1)
	msg := notif.messages[0]
	assert.Contains(t, msg, "Latest index: 52 (Neutral")
	assert.Contains(t, msg, "Change vs previous: -3")
	assert.Contains(t, msg, "2024-05-03 00:00 UTC")
	assert.Contains(t, msg, "1.00 (very strong, positive")

	require.NotNil(t, renderer.aligned)
	assert.Len(t, renderer.aligned.Days, 3)
	assert.Equal(t, "output/test_chart.png", renderer.path)

	require.Len(t, notif.photos, 1)
	assert.Equal(t, "output/test_chart.png", notif.photos[0])
	assert.Equal(t, "Bitcoin fear/greed chart (last 6 months)", notif.captions[0])
}

func TestRunner_FetchFailureSendsNothing(t *testing.T) {
	_, prices := testData()
	renderer := &stubRenderer{}
	notif := &stubNotifier{}
	failing := &failingSentimentSource{err: errors.New("provider down")}

	err := newRunner(failing, prices, renderer, notif).Run()
	require.Error(t, err)
	assert.Nil(t, renderer.aligned)
	assert.Empty(t, notif.messages)
	assert.Empty(t, notif.photos)
}

func TestRunner_RenderFailureSendsNothing(t *testing.T) {
	sentiment, prices := testData()
	renderer := &stubRenderer{err: errors.New("disk full")}
	notif := &stubNotifier{}

	err := newRunner(sentiment, prices, renderer, notif).Run()
	require.Error(t, err)
	assert.Empty(t, notif.messages)
	assert.Empty(t, notif.photos)
}

func TestRunner_SendFailurePropagates(t *testing.T) {
	sentiment, prices := testData()
	renderer := &stubRenderer{}
	notif := &stubNotifier{sendErr: errors.New("telegram unreachable")}

	err := newRunner(sentiment, prices, renderer, notif).Run()
	require.Error(t, err)
	assert.Empty(t, notif.photos, "photo must not be sent when the message failed")
}

func TestRunner_InsufficientDataAborts(t *testing.T) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	sentiment := &collector.MockSentimentSource{Points: []model.FearGreedPoint{
		{Time: base, Value: 50},
	}}
	prices := &collector.MockPriceSource{Points: []model.PricePoint{
		{Time: base, Price: 60000},
	}}
	renderer := &stubRenderer{}
	notif := &stubNotifier{}

	err := newRunner(sentiment, prices, renderer, notif).Run()
	require.Error(t, err)
	assert.Empty(t, notif.messages)
}
