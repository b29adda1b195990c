package cafelist

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/vcrobe/cafelist/api"
	"github.com/vcrobe/cafelist/cafe"
	"github.com/vcrobe/cafelist/config"
	"github.com/vcrobe/cafelist/dom"
	"github.com/vcrobe/cafelist/events"
	"github.com/vcrobe/cafelist/vdom"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeAPI returns canned results and records every call.
type fakeAPI struct {
	mu    sync.Mutex
	calls []string
	terms []string

	list    []cafe.Cafe
	listErr error

	search    []cafe.Cafe
	searchErr error

	random    cafe.Cafe
	randomErr error
}

func (f *fakeAPI) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeAPI) ListCafes(context.Context) ([]cafe.Cafe, error) {
	f.record("list")
	return f.list, f.listErr
}

func (f *fakeAPI) SearchByLocation(_ context.Context, term string) ([]cafe.Cafe, error) {
	f.record("search")
	f.mu.Lock()
	f.terms = append(f.terms, term)
	f.mu.Unlock()
	return f.search, f.searchErr
}

func (f *fakeAPI) RandomCafe(context.Context) (cafe.Cafe, error) {
	f.record("random")
	return f.random, f.randomErr
}

func (f *fakeAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// alerts records every blocking notice.
type alerts struct {
	mu   sync.Mutex
	msgs []string
}

func (a *alerts) Alert(msg string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.msgs = append(a.msgs, msg)
}

func (a *alerts) All() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.msgs...)
}

func newPage() *dom.Memory {
	return dom.NewMemory("cafe-list", "random-cafe-btn", "search-form", "search-input")
}

func listContent(t *testing.T, doc *dom.Memory) string {
	t.Helper()
	out, err := doc.Content("cafe-list")
	require.NoError(t, err)
	return out
}

var (
	serverErr404 = &api.StatusError{Op: "test", StatusCode: http.StatusNotFound}
	serverErr500 = &api.StatusError{Op: "test", StatusCode: http.StatusInternalServerError}
	networkErr   = &api.NetworkError{Op: "test", Err: errors.New("Failed to fetch")}
)

func TestLoadAllCafes(t *testing.T) {
	doc, fake := newPage(), &fakeAPI{list: []cafe.Cafe{blueBottle, fritz}}
	c := New(doc, &alerts{}, fake)

	c.LoadAllCafes(context.Background())

	cards := parseCards(t, listContent(t, doc))
	require.Len(t, cards, 2)
	assert.Equal(t, "/cafe/7", cards[0].headingHref)
	assert.Equal(t, "/cafe/12", cards[1].headingHref)
	assert.Equal(t, []string{"list"}, fake.Calls())
}

func TestLoadAllCafes_Failures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"server failure", serverErr500, `<p style="color: red;">카페 목록을 불러오는 중 오류 발생</p>`},
		{"404 stays an error", serverErr404, `<p style="color: red;">카페 목록을 불러오는 중 오류 발생</p>`},
		{"network failure", networkErr, `<p style="color: red;">Failed to fetch</p>`},
		{"decode failure", errors.New("list cafes: decode response: bad"), `<p style="color: red;">list cafes: decode response: bad</p>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := newPage()
			require.NoError(t, doc.SetContent("cafe-list", previousCards()...))

			c := New(doc, &alerts{}, &fakeAPI{listErr: tt.err})
			c.LoadAllCafes(context.Background())

			assert.Equal(t, tt.want, listContent(t, doc))
		})
	}
}

// previousCards is list content that every flow must fully replace.
func previousCards() []*vdom.VNode {
	return RenderCafeCards([]cafe.Cafe{blueBottle}, defaultLabels())
}

func TestSubmitSearch_EmptyInputWarns(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		doc, fake, notes := newPage(), &fakeAPI{}, &alerts{}
		require.NoError(t, doc.SetValue("search-input", input))
		c := New(doc, notes, fake)

		ev := events.NewSynthetic("submit")
		c.SubmitSearch(context.Background(), ev)

		assert.True(t, ev.DefaultPrevented())
		assert.Empty(t, fake.Calls(), "no request for %q", input)
		assert.Equal(t, []string{"검색할 지역을 입력하세요!"}, notes.All())
		assert.Equal(t, 0, doc.Writes())
	}
}

func TestSubmitSearch_NormalizesTerm(t *testing.T) {
	for _, input := range []string{"Seoul", " Seoul ", "SEOUL", "seoul"} {
		doc, fake := newPage(), &fakeAPI{search: []cafe.Cafe{blueBottle}}
		require.NoError(t, doc.SetValue("search-input", input))

		New(doc, &alerts{}, fake).SubmitSearch(context.Background(), events.NewSynthetic("submit"))

		assert.Equal(t, []string{"seoul"}, fake.terms, "input %q", input)
	}
}

func TestSubmitSearch_Outcomes(t *testing.T) {
	noResults := `<p style="color: gray;">검색 결과가 없습니다.</p>`

	tests := []struct {
		name    string
		results []cafe.Cafe
		err     error
		want    string
	}{
		{"404 is no results", nil, serverErr404, noResults},
		{"empty array is no results", []cafe.Cafe{}, nil, noResults},
		{"null body is no results", nil, nil, noResults},
		{"server failure", nil, serverErr500, `<p style="color: red;">검색 중 오류 발생: 검색 요청 실패</p>`},
		{"network failure", nil, networkErr, `<p style="color: red;">검색 중 오류 발생: Failed to fetch</p>`},
		{"results", []cafe.Cafe{fritz}, nil, CardsHTML([]cafe.Cafe{fritz}, defaultLabels())},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := newPage()
			require.NoError(t, doc.SetContent("cafe-list", previousCards()...))
			require.NoError(t, doc.SetValue("search-input", "mapo"))

			c := New(doc, &alerts{}, &fakeAPI{search: tt.results, searchErr: tt.err})
			c.SubmitSearch(context.Background(), events.NewSynthetic("submit"))

			assert.Equal(t, tt.want, listContent(t, doc))
		})
	}
}

func TestSubmitSearch_MissingInput(t *testing.T) {
	doc, fake, notes := dom.NewMemory("cafe-list"), &fakeAPI{}, &alerts{}

	New(doc, notes, fake).SubmitSearch(context.Background(), nil)

	assert.Empty(t, fake.Calls())
	assert.Empty(t, notes.All())
}

func TestRequestRandomCafe(t *testing.T) {
	doc, notes := newPage(), &alerts{}
	c := New(doc, notes, &fakeAPI{random: fritz})

	c.RequestRandomCafe(context.Background())

	assert.Equal(t, []string{"🎲 추천 카페: Fritz - Mapo, Seoul"}, notes.All())
	assert.Equal(t, 0, doc.Writes(), "random pick must not touch the list")
}

func TestRequestRandomCafe_Failures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"server failure", serverErr500, "⚠️ 오류 발생: 랜덤 카페를 불러올 수 없습니다."},
		{"no cafes", serverErr404, "⚠️ 오류 발생: 랜덤 카페를 불러올 수 없습니다."},
		{"network failure", networkErr, "⚠️ 오류 발생: Failed to fetch"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, notes := newPage(), &alerts{}
			New(doc, notes, &fakeAPI{randomErr: tt.err}).RequestRandomCafe(context.Background())

			assert.Equal(t, []string{tt.want}, notes.All())
			assert.Equal(t, 0, doc.Writes())
		})
	}
}

func TestInitialize_LoadsAndBinds(t *testing.T) {
	doc, notes := newPage(), &alerts{}
	fake := &fakeAPI{list: []cafe.Cafe{blueBottle}, search: []cafe.Cafe{fritz}, random: blueBottle}
	c := New(doc, notes, fake)

	require.NoError(t, c.Initialize(context.Background()))
	c.Wait()

	assert.Equal(t, []string{"list"}, fake.Calls())
	assert.Len(t, parseCards(t, listContent(t, doc)), 1)

	// random-cafe control
	n, err := doc.Dispatch("random-cafe-btn", "click", events.NewSynthetic("click"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	c.Wait()
	assert.Equal(t, []string{"🎲 추천 카페: Blue Bottle - Seoul"}, notes.All())

	// search form
	require.NoError(t, doc.SetValue("search-input", " Mapo "))
	submit := events.NewSynthetic("submit")
	_, err = doc.Dispatch("search-form", "submit", submit)
	require.NoError(t, err)
	assert.True(t, submit.DefaultPrevented(), "default prevented before the flow runs")
	c.Wait()

	assert.Equal(t, []string{"list", "random", "search"}, fake.Calls())
	assert.Equal(t, []string{"mapo"}, fake.terms)
	cards := parseCards(t, listContent(t, doc))
	require.Len(t, cards, 1)
	assert.Equal(t, "Fritz", cards[0].headingText)
}

// countingEvent records how many times its default was prevented.
type countingEvent struct {
	mu        sync.Mutex
	prevented int
}

func (e *countingEvent) PreventDefault() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.prevented++
}

func (e *countingEvent) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.prevented
}

func TestInitialize_SubmitPreventsDefaultOnce(t *testing.T) {
	doc := newPage()
	fake := &fakeAPI{search: []cafe.Cafe{fritz}}
	c := New(doc, &alerts{}, fake)
	require.NoError(t, c.Initialize(context.Background()))
	c.Wait()

	require.NoError(t, doc.SetValue("search-input", "mapo"))
	ev := &countingEvent{}
	_, err := doc.Dispatch("search-form", "submit", ev)
	require.NoError(t, err)
	assert.Equal(t, 1, ev.Count(), "prevented inside the listener")
	c.Wait()

	assert.Equal(t, 1, ev.Count(), "the flow must not touch the event again")
	assert.Equal(t, []string{"mapo"}, fake.terms)
}

func TestInitialize_MissingElements(t *testing.T) {
	t.Run("random control", func(t *testing.T) {
		doc := dom.NewMemory("cafe-list", "search-form", "search-input")
		c := New(doc, &alerts{}, &fakeAPI{})

		err := c.Initialize(context.Background())
		c.Wait()

		require.Error(t, err)
		assert.ErrorIs(t, err, dom.ErrElementNotFound)
		assert.Contains(t, err.Error(), "bind random cafe control")
	})

	t.Run("search form", func(t *testing.T) {
		doc := dom.NewMemory("cafe-list", "random-cafe-btn", "search-input")
		c := New(doc, &alerts{}, &fakeAPI{})

		err := c.Initialize(context.Background())
		c.Wait()

		require.Error(t, err)
		assert.ErrorIs(t, err, dom.ErrElementNotFound)
		assert.Contains(t, err.Error(), "bind search form")
	})
}

func TestWithConfig_CustomElements(t *testing.T) {
	cfg := config.Default()
	cfg.Elements = config.ElementsConfig{
		List:         "results",
		RandomButton: "lucky",
		SearchForm:   "finder",
		SearchInput:  "q",
	}
	cfg.Messages.NoResults = "Nothing found."

	doc := dom.NewMemory("results", "lucky", "finder", "q")
	c := New(doc, &alerts{}, &fakeAPI{searchErr: serverErr404}, WithConfig(cfg), WithLogger(nil))

	require.NoError(t, c.Initialize(context.Background()))
	c.Wait()

	require.NoError(t, doc.SetValue("q", "nowhere"))
	_, err := doc.Dispatch("finder", "submit", events.NewSynthetic("submit"))
	require.NoError(t, err)
	c.Wait()

	out, err := doc.Content("results")
	require.NoError(t, err)
	assert.Equal(t, `<p style="color: gray;">Nothing found.</p>`, out)
}

func TestNormalizeSearchTerm(t *testing.T) {
	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{"", "", false},
		{"  ", "", false},
		{" Seoul ", "seoul", true},
		{"Gangnam-Gu", "gangnam-gu", true},
		{" 서울 ", "서울", true},
	}
	for _, tt := range tests {
		got, ok := NormalizeSearchTerm(tt.raw)
		assert.Equal(t, tt.want, got, "raw %q", tt.raw)
		assert.Equal(t, tt.wantOK, ok, "raw %q", tt.raw)
	}
}
