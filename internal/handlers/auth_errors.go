package handlers

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ErrorKind is the closed set of auth failures the API reports. The
// boundary classifies provider errors once, so presentation text never
// depends on upstream wording.
type ErrorKind string

const (
	KindInvalidCredentials ErrorKind = "invalid_credentials"
	KindDuplicateAccount   ErrorKind = "duplicate_account"
	KindUnconfirmed        ErrorKind = "unconfirmed"
	KindNotFound           ErrorKind = "not_found"
	KindUnknown            ErrorKind = "unknown"
)

// uniqueViolation is the Postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

// classifyAuthError maps a storage error onto an ErrorKind.
func classifyAuthError(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return KindNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		return KindDuplicateAccount
	}
	return KindUnknown
}

// kindMessages carries the user-facing Indonesian text per kind.
var kindMessages = map[ErrorKind]string{
	KindInvalidCredentials: "Email atau kata sandi yang Anda masukkan salah",
	KindDuplicateAccount:   "Email sudah terdaftar. Silakan gunakan email lain.",
	KindUnconfirmed:        "Email belum dikonfirmasi. Silakan cek kotak masuk email Anda",
	KindNotFound:           "Pengguna tidak ditemukan. Periksa email Anda atau daftar terlebih dahulu",
	KindUnknown:            "Terjadi kesalahan server. Silakan coba lagi nanti",
}

// Message returns the display text for the kind.
func (k ErrorKind) Message() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}
	return kindMessages[KindUnknown]
}
