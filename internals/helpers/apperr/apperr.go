// file: internals/helpers/apperr/apperr.go
//
// Taksonomi error subsistem absensi:
//   - Validation     → precondition lokal gagal (payload kosong, tanggal/section belum dipilih)
//   - Permission     → role tidak punya status absensi sama sekali / role tidak ada
//   - Service        → panggilan remote/DB gagal atau bentuk respons rusak
//   - Configuration  → defect (mis. record id tidak ter-resolve), bukan salah user
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindPermission
	KindService
	KindConfiguration
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindPermission:
		return "permission"
	case KindService:
		return "service"
	case KindConfiguration:
		return "configuration"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error // penyebab asli (opsional)
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func NewValidation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NewPermission(message string) *Error {
	return &Error{Kind: KindPermission, Message: message}
}

func NewService(message string, cause error) *Error {
	return &Error{Kind: KindService, Message: message, Err: cause}
}

func NewConfiguration(message string) *Error {
	return &Error{Kind: KindConfiguration, Message: message}
}

func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return 0
}

func IsValidation(err error) bool    { return KindOf(err) == KindValidation }
func IsPermission(err error) bool    { return KindOf(err) == KindPermission }
func IsService(err error) bool       { return KindOf(err) == KindService }
func IsConfiguration(err error) bool { return KindOf(err) == KindConfiguration }

// HTTPStatus memetakan kind ke status HTTP.
// Pesan ServiceError diteruskan apa adanya ke klien (dipercaya dari remote).
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return 400
	case KindPermission:
		return 403
	case KindService:
		return 502
	case KindConfiguration:
		return 500
	default:
		return 500
	}
}
