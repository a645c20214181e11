package models

import (
	"fmt"
	"strings"
)

// Code identifies one of the foreign currencies quoted against KRW
type Code string

const (
	USD Code = "USD"
	JPY Code = "JPY"
	EUR Code = "EUR"
	CNY Code = "CNY"
)

// KRW is the base currency; it is never a valid Code.
const KRW = "KRW"

var supportedCodes = []Code{USD, JPY, EUR, CNY}

var flagFiles = map[Code]string{
	USD: "us.png",
	JPY: "jp.png",
	EUR: "eu.png",
	CNY: "cn.png",
}

// SupportedCodes returns the foreign currencies in display order
func SupportedCodes() []Code {
	codes := make([]Code, len(supportedCodes))
	copy(codes, supportedCodes)
	return codes
}

// ParseCode normalises s and checks it against the supported set
func ParseCode(s string) (Code, error) {
	code := Code(strings.ToUpper(strings.TrimSpace(s)))
	if !code.IsSupported() {
		return "", fmt.Errorf("unsupported currency %q", s)
	}
	return code, nil
}

func (c Code) IsSupported() bool {
	_, ok := flagFiles[c]
	return ok
}

// FlagFile is the asset filename of the currency's flag image
func (c Code) FlagFile() string {
	return flagFiles[c]
}

func (c Code) String() string { return string(c) }
