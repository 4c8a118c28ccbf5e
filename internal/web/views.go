package web

import (
	"context"
	"io"
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/feedbackboard/internal/board"
	"github.com/dmitrymomot/feedbackboard/pkg/formatter"
	"github.com/dmitrymomot/feedbackboard/pkg/sanitizer"
)

const (
	MsgNoFeedback = "No feedback found. Be the first to submit!"
	MsgNoComments = "No comments yet. Be the first to comment!"
)

type FeedPageParams struct {
	Items    []board.Feedback
	Filter   string
	SignedIn *board.Identity
	Format   *formatter.Formatter
}

type DetailPageParams struct {
	Feedback board.Feedback
	Comments []board.Comment
	SignedIn *board.Identity
	Format   *formatter.Formatter
}

type ErrorPageParams struct {
	Status  int
	Message string
}

func layout(title string, signedIn *board.Identity, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>`)
		hw.text(title)
		hw.raw(` | Feedback Board</title></head><body><header><a href="/">Feedback Board</a>`)
		if signedIn != nil {
			hw.raw(`<span class="user">`)
			hw.text(signedIn.Username)
			hw.raw(`</span>`)
		}
		hw.raw(`</header><main>`)
		hw.component(ctx, body)
		hw.raw(`</main></body></html>`)
		return hw.err
	})
}

// FeedPage lists feedback cards in the order given.
func FeedPage(p FeedPageParams) templ.Component {
	f := p.Format
	if f == nil {
		f = formatter.New()
	}
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		filterForm(hw, p.Filter, p.SignedIn != nil)

		hw.raw(`<div id="feedback-container">`)
		if len(p.Items) == 0 {
			hw.raw(`<p class="empty-message">`)
			hw.text(MsgNoFeedback)
			hw.raw(`</p>`)
		}
		for _, fb := range p.Items {
			feedbackCard(hw, f, fb)
		}
		hw.raw(`</div>`)
		return hw.err
	})
	return layout("Feedback", p.SignedIn, body)
}

func filterForm(hw *htmlWriter, current string, signedIn bool) {
	if current == "" {
		current = board.FilterAll
	}
	hw.raw(`<form method="get" action="/"><select name="filter">`)
	option := func(value, label string) {
		hw.raw(`<option value="`)
		hw.text(value)
		hw.raw(`"`)
		if value == current {
			hw.raw(` selected`)
		}
		hw.raw(`>`)
		hw.text(label)
		hw.raw(`</option>`)
	}
	option(board.FilterAll, "All")
	for _, c := range board.Categories {
		option(string(c), c.Label())
	}
	for _, s := range board.Statuses {
		option(string(s), s.Label())
	}
	if signedIn {
		option(board.FilterMySubmissions, "My Submissions")
	}
	hw.raw(`</select><button type="submit">Filter</button></form>`)
}

func feedbackCard(hw *htmlWriter, f *formatter.Formatter, fb board.Feedback) {
	hw.raw(`<a class="feedback-card" href="/feedback/`)
	hw.text(url.PathEscape(fb.ID))
	hw.raw(`" data-feedback-id="`)
	hw.text(fb.ID)
	hw.raw(`"><div class="vote-section"><div class="vote-count">`)
	hw.text(strconv.Itoa(fb.VoteCount))
	hw.raw(`</div><div class="vote-label">votes</div></div><div class="feedback-info"><h3 class="feedback-title">`)
	hw.stored(fb.Title)
	hw.raw(`</h3><p class="feedback-description">`)
	hw.stored(fb.Description)
	hw.raw(`</p>`)
	feedbackMeta(hw, fb, "by "+fb.Username, f.DateOf(fb.CreatedAt))
	hw.raw(`</div></a>`)
}

func feedbackMeta(hw *htmlWriter, fb board.Feedback, author, date string) {
	hw.raw(`<div class="feedback-meta"><span class="category-tag">`)
	hw.text(fb.Category.Label())
	hw.raw(`</span><span class="status-tag">`)
	hw.text(fb.Status.Label())
	hw.raw(`</span><span class="author">`)
	hw.text(author)
	hw.raw(`</span><span class="date">`)
	hw.text(date)
	hw.raw(`</span></div>`)
}

// DetailPage shows one feedback item with its comments.
func DetailPage(p DetailPageParams) templ.Component {
	f := p.Format
	if f == nil {
		f = formatter.New()
	}
	fb := p.Feedback
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<article class="feedback-detail" data-feedback-id="`)
		hw.text(fb.ID)
		hw.raw(`"><h1 id="feedback-title">`)
		hw.stored(fb.Title)
		hw.raw(`</h1><p id="feedback-description">`)
		hw.stored(fb.Description)
		hw.raw(`</p>`)
		feedbackMeta(hw, fb, "Posted by: "+fb.Username, f.DateTimeOf(fb.CreatedAt))
		hw.raw(`<div id="vote-count">`)
		hw.text(f.Votes(fb.VoteCount))
		hw.raw(`</div>`)
		if board.CanDelete(p.SignedIn, fb) {
			hw.raw(`<button id="delete-feedback-btn" type="button">Delete</button>`)
		}
		hw.raw(`</article><section id="comments-container">`)
		if len(p.Comments) == 0 {
			hw.raw(`<p class="no-comments">`)
			hw.text(MsgNoComments)
			hw.raw(`</p>`)
		}
		for _, c := range p.Comments {
			hw.raw(`<div class="comment"><div class="comment-author">`)
			hw.text(c.Username)
			hw.raw(`</div><div class="comment-date">`)
			hw.text(f.DateTimeOf(c.CreatedAt))
			hw.raw(`</div><div class="comment-text">`)
			hw.stored(c.Text)
			hw.raw(`</div></div>`)
		}
		hw.raw(`</section>`)
		return hw.err
	})
	return layout(sanitizer.UnescapeHTML(fb.Title), p.SignedIn, body)
}

// ErrorPage renders a status code and a message.
func ErrorPage(p ErrorPageParams) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<p class="error-message" data-status="`)
		hw.text(strconv.Itoa(p.Status))
		hw.raw(`">`)
		hw.text(p.Message)
		hw.raw(`</p>`)
		return hw.err
	})
	return layout("Error", nil, body)
}
