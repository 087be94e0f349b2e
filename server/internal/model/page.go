package model

import (
	"github.com/practicum/shareit/server/internal/errs"
)

// PageRequest is an (offset, size) window snapped to a page boundary:
// page = from/size by integer division, so a from not aligned to size
// yields the containing page, not an exact slice.
type PageRequest struct {
	Page int
	Size int
}

func NewPageRequest(from, size int) (PageRequest, error) {
	if from < 0 || size <= 0 {
		return PageRequest{}, errs.ErrPagination
	}
	return PageRequest{Page: from / size, Size: size}, nil
}

func (p PageRequest) Limit() uint64 {
	return uint64(p.Size)
}

func (p PageRequest) Offset() uint64 {
	return uint64(p.Page * p.Size)
}
