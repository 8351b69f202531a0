package repository

import (
	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrNotFound     = types.ErrNotFound
	ErrInvalidInput = goerr.New("invalid input")
)
