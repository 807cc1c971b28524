package bech32

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestBench32EncodeDecode(t *testing.T) {
	payload, err := hex.DecodeString("746573742d7061796c6f6164")
	if err != nil {
		t.Fatal(err)
	}

	raw, err := Encode("mart", payload)
	if err != nil {
		t.Fatalf("cannot encode: %s", err)
	}

	hrp, got, err := Decode(string(raw))
	if err != nil {
		t.Fatal(err)
	}

	if hrp != "mart" {
		t.Fatalf("invalid human readable part: %q", hrp)
	}
	if !bytes.Equal(payload, got) {
		t.Logf("want %d", payload)
		t.Logf("got  %d", got)
		t.Fatal("invalid decode")
	}
}

func TestBench32DecodeGarbage(t *testing.T) {
	if _, _, err := Decode("not a bech32 payload"); err == nil {
		t.Fatal("decoded a garbage input")
	}
}
