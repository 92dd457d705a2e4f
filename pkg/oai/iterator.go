package oai

import (
	"context"
	"io"
	"iter"

	"github.com/beevik/etree"

	"github.com/matzehuels/oaiview/pkg/errors"
)

// Iterator walks the items of a list response, fetching the next page
// when the current one is used up. It is not safe for concurrent use.
type Iterator[T any] struct {
	client *Client
	req    Request
	item   string
	parse  func(el *etree.Element, ns string) (T, error)

	page     *Response
	items    []*etree.Element
	pos      int
	requests int
	done     bool
	err      error
}

func newIterator[T any](c *Client, req Request, item string, parse func(*etree.Element, string) (T, error)) *Iterator[T] {
	return &Iterator[T]{client: c, req: req, item: item, parse: parse}
}

// Next returns the next item. It returns io.EOF once the list is exhausted;
// any other error is sticky and returned by every later call.
func (it *Iterator[T]) Next(ctx context.Context) (T, error) {
	var zero T
	if it.err != nil {
		return zero, it.err
	}
	for it.pos >= len(it.items) {
		if it.done {
			return zero, io.EOF
		}
		if err := it.fetch(ctx); err != nil {
			it.err = err
			return zero, err
		}
	}
	el := it.items[it.pos]
	it.pos++
	v, err := it.parse(el, it.page.namespace)
	if err != nil {
		return zero, err
	}
	return v, nil
}

func (it *Iterator[T]) fetch(ctx context.Context) error {
	if limit := it.client.maxRequests; limit > 0 && it.requests >= limit {
		return errors.New(errors.ErrCodeTooManyRequests, "%s: stopped after %d requests", it.req.Verb, it.requests)
	}
	it.requests++
	resp, err := it.client.Do(ctx, it.req)
	if err != nil {
		if oe, ok := AsError(err); ok && oe.empty() {
			it.page, it.items, it.pos, it.done = resp, nil, 0, true
			return nil
		}
		return err
	}

	it.page = resp
	it.items = resp.items(it.item)
	it.pos = 0
	it.client.logger.Debug("oai page", "verb", it.req.Verb, "page", it.requests, "items", len(it.items))

	token := resp.ResumptionToken()
	if token == "" {
		it.done = true
		return nil
	}
	it.req = Request{Endpoint: it.req.Endpoint, Verb: it.req.Verb, ResumptionToken: token}
	return nil
}

// All yields the remaining items. Iteration stops after the first error,
// which is yielded with the zero value.
func (it *Iterator[T]) All(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			v, err := it.Next(ctx)
			if err == io.EOF {
				return
			}
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}

// Collect drains the iterator into a slice.
func (it *Iterator[T]) Collect(ctx context.Context) ([]T, error) {
	var out []T
	for v, err := range it.All(ctx) {
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Response returns the page the last item came from, or nil before the
// first call to Next.
func (it *Iterator[T]) Response() *Response { return it.page }

// Requests returns the number of pages fetched so far.
func (it *Iterator[T]) Requests() int { return it.requests }

// XMLTree returns the XML of the current page, or nil before the first
// call to Next.
func (it *Iterator[T]) XMLTree() *etree.Element {
	if it.page == nil {
		return nil
	}
	return it.page.XMLTree()
}
