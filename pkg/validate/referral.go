package validate

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

func IsLuna(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

// NormalizeReferralCode drops the single "x" marker that shared referral links carry.
func NormalizeReferralCode(code string) string {
	code = strings.TrimSpace(code)
	if i := strings.IndexAny(code, "xX"); i >= 0 {
		code = code[:i] + code[i+1:]
	}
	return code
}

// ParseReferralCode returns the account id encoded in code.
func ParseReferralCode(code string) (int64, bool) {
	code = NormalizeReferralCode(code)
	if code == "" || !IsLuna(code) {
		return 0, false
	}
	id, err := strconv.ParseInt(code, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// NewReferralID returns a random six digit id whose last digit is a Luhn check digit.
func NewReferralID(rnd *rand.Rand) (int64, error) {
	prefix := strconv.Itoa(10000 + rnd.Intn(90000))
	_, number, err := goluhn.Calculate(prefix)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(number, 10, 64)
}
