package data

import (
	"errors"

	"github.com/xhd2015/walletui/data/storage"
)

var (
	ErrNotFound       = storage.ErrNotFound
	ErrNameTaken      = errors.New("name already taken")
	ErrInvalidAddress = errors.New("invalid address")
	ErrEmptyName      = errors.New("name is required")
	ErrEmptyURL       = errors.New("url is required")
)
