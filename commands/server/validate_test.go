package server

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/errors"
)

type optionsInit struct {
	key string
}

func (i optionsInit) FromGenesis(opts mart.Options, kv mart.KVStore) error {
	var value string
	if err := opts.ReadOptions(i.key, &value); err != nil {
		return err
	}
	if value == "" {
		return errors.Wrapf(errors.ErrEmpty, "%s option", i.key)
	}
	return nil
}

func TestValidateGenesis(t *testing.T) {
	cases := map[string]struct {
		genesis string
		wantErr bool
	}{
		"valid genesis": {
			genesis: `{"app_state": {"dummy": "ok"}}`,
			wantErr: false,
		},
		"missing option": {
			genesis: `{"app_state": {}}`,
			wantErr: true,
		},
		"broken json": {
			genesis: `{"app_state": `,
			wantErr: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			path := writeTempGenesis(t, tc.genesis)
			defer os.Remove(path)

			err := ValidateGenesis(optionsInit{key: "dummy"}, []string{path})
			if tc.wantErr && err == nil {
				t.Fatal("expected an error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestValidateGenesisMissingFile(t *testing.T) {
	err := ValidateGenesis(optionsInit{key: "dummy"}, []string{"/does/not/exist.json"})
	if err == nil {
		t.Fatal("expected an error")
	}
}

func writeTempGenesis(t testing.TB, content string) string {
	t.Helper()
	fd, err := ioutil.TempFile("", "genesis")
	if err != nil {
		t.Fatalf("cannot create genesis file: %s", err)
	}
	defer fd.Close()
	if _, err := fd.WriteString(content); err != nil {
		t.Fatalf("cannot write genesis file: %s", err)
	}
	return fd.Name()
}
