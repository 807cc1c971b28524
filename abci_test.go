package mart_test

import (
	"strings"
	"testing"

	"github.com/tendermint/tendermint/libs/common"
	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/errors"
	"github.com/tokenmart/mart/marttest/assert"
)

func TestDeliverOrError(t *testing.T) {
	res := &mart.DeliverResult{
		Data: []byte("foo"),
		Log:  "stored",
		Tags: []common.KVPair{{Key: []byte("action"), Value: []byte("test")}},
	}
	resp := mart.DeliverOrError(res, nil, false)
	assert.Equal(t, uint32(errors.SuccessABCICode), resp.Code)
	assert.Equal(t, []byte("foo"), resp.Data)
	assert.Equal(t, "stored", resp.Log)
	assert.Equal(t, res.Tags, resp.Tags)

	resp = mart.DeliverOrError(nil, errors.ErrNotFound, false)
	if resp.Code == errors.SuccessABCICode {
		t.Fatal("error response must carry a non-zero code")
	}
	if !strings.Contains(resp.Log, "not found") {
		t.Fatalf("unexpected log: %q", resp.Log)
	}
}

func TestCheckOrError(t *testing.T) {
	res := &mart.CheckResult{GasAllocated: 5, Log: "all good"}
	resp := mart.CheckOrError(res, nil, false)
	assert.Equal(t, uint32(errors.SuccessABCICode), resp.Code)
	assert.Equal(t, int64(5), resp.GasWanted)
	assert.Equal(t, "all good", resp.Log)

	resp = mart.CheckOrError(nil, errors.ErrUnauthorized, false)
	if resp.Code == errors.SuccessABCICode {
		t.Fatal("error response must carry a non-zero code")
	}
}

func TestDeliverTxErrorHidesInternalDetails(t *testing.T) {
	raw := errors.Wrap(mysteryError{}, "db exploded")

	resp := mart.DeliverTxError(raw, false)
	if strings.Contains(resp.Log, "db exploded") {
		t.Fatalf("internal error details leaked: %q", resp.Log)
	}

	resp = mart.DeliverTxError(raw, true)
	if !strings.Contains(resp.Log, "db exploded") {
		t.Fatalf("debug mode must expose details: %q", resp.Log)
	}
}

func TestCheckTxErrorUsesRegisteredCode(t *testing.T) {
	err := errors.Wrap(errors.ErrAmount, "negative value")
	resp := mart.CheckTxError(err, false)
	if resp.Code == errors.SuccessABCICode {
		t.Fatal("error response must carry a non-zero code")
	}
	if !strings.Contains(resp.Log, "negative value") {
		t.Fatalf("registered error details must be kept: %q", resp.Log)
	}
}

type mysteryError struct{}

func (mysteryError) Error() string { return "db exploded" }
