package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/mymoney/internal/common"
)

// Amount is a monetary value. The remote store is loosely typed and may
// deliver amounts either as JSON numbers or as numeric strings; anything
// else is rejected at the ingestion boundary instead of silently becoming
// zero or NaN.
type Amount float64

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(a), 'f', -1, 64)), nil
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" || s == "null" {
		return fmt.Errorf("%w: missing amount", common.ErrValidation)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("%w: amount %q is not numeric", common.ErrValidation, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: amount %q is not finite", common.ErrValidation, s)
	}
	*a = Amount(v)
	return nil
}
