package board

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrAmbiguousID    = errors.New("ambiguous id")
	ErrExpired        = errors.New("listing has expired")
	ErrAlreadyClaimed = errors.New("listing is already claimed")
	ErrOwnListing     = errors.New("you cannot claim your own food posts")
	ErrNotOwner       = errors.New("only the poster can delete a listing")
)
