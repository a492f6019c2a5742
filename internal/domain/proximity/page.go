package proximity

import (
	"math"
	"strconv"
	"strings"

	domainerrors "soko/internal/domain/errors"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PagePolicy bounds the page size a client may ask for.
type PagePolicy struct {
	DefaultSize int
	MaxSize     int
}

// DefaultPagePolicy serves 20 items per page and never more than 100.
var DefaultPagePolicy = PagePolicy{DefaultSize: DefaultPageSize, MaxSize: MaxPageSize}

// PageRequest is a 1-based page number and a page size.
type PageRequest struct {
	Page     int
	PageSize int
}

// Offset is the number of items preceding the page. It saturates at
// math.MaxInt instead of wrapping, so an absurd page stays past the end.
func (p PageRequest) Offset() int {
	if p.Page <= 1 || p.PageSize <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.PageSize {
		return math.MaxInt
	}

	return (p.Page - 1) * p.PageSize
}

// ParsePage reads the page and page_size query values.
//
// A missing page means 1; a page that is not a positive integer is a client
// error. A page whose offset cannot be represented lies past the end of any
// result set. A missing or unusable page_size falls back to the default and a
// larger one is clamped to the maximum.
func (pp PagePolicy) ParsePage(rawPage, rawPageSize string) (PageRequest, error) {
	pp = pp.normalized()
	req := PageRequest{Page: 1, PageSize: pp.DefaultSize}

	if s := strings.TrimSpace(rawPage); s != "" {
		page, err := strconv.Atoi(s)
		if err != nil || page < 1 {
			return PageRequest{}, domainerrors.ErrInvalidPage.WithDetails("page=" + rawPage)
		}
		if page > math.MaxInt/pp.MaxSize {
			return PageRequest{}, domainerrors.ErrPageNotFound.WithDetails("page=" + rawPage)
		}
		req.Page = page
	}

	if s := strings.TrimSpace(rawPageSize); s != "" {
		if size, err := strconv.Atoi(s); err == nil && size > 0 {
			req.PageSize = min(size, pp.MaxSize)
		}
	}

	return req, nil
}

func (pp PagePolicy) normalized() PagePolicy {
	if pp.MaxSize <= 0 {
		pp.MaxSize = MaxPageSize
	}
	if pp.DefaultSize <= 0 {
		pp.DefaultSize = DefaultPageSize
	}
	pp.DefaultSize = min(pp.DefaultSize, pp.MaxSize)

	return pp
}

// Page is one page of ranked results plus continuation metadata.
type Page[T any] struct {
	Items    []Ranked[T]
	Total    int64
	Page     int
	PageSize int
}

// TotalPages is never below 1 so an empty first page is still valid.
func (p *Page[T]) TotalPages() int {
	if p.Total == 0 || p.PageSize <= 0 {
		return 1
	}

	return int((p.Total + int64(p.PageSize) - 1) / int64(p.PageSize))
}

// HasNext reports whether a following page exists.
func (p *Page[T]) HasNext() bool {
	return p.Page < p.TotalPages()
}

// HasPrevious reports whether a preceding page exists.
func (p *Page[T]) HasPrevious() bool {
	return p.Page > 1
}
