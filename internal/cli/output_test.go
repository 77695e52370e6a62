// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "bad", nil)))

	inner := errors.New("inner")
	wrapped := WrapExitError(ExitFailure, "E103", inner)
	assert.ErrorIs(t, wrapped, inner)
	assert.Equal(t, "E103: inner", wrapped.Error())
	assert.Equal(t, "bad", WrapExitError(ExitCommandError, "bad", nil).Error())
}

func TestResultString(t *testing.T) {
	r := Result{
		Operations: []string{"R1 <-> R2"},
		Rows:       [][]string{{"1", "0"}, {"0", "1"}},
	}
	assert.Equal(t, "R1 <-> R2\n[1, 0]\n[0, 1]", r.String())

	assert.Equal(t, "[4/5, 7/5]", Result{Vector: []string{"4/5", "7/5"}}.String())
	assert.Equal(t, "6", Result{Value: "6"}.String())
	assert.Equal(t, "", Result{}.String())
}

func TestOutputFormatterText(t *testing.T) {
	var buf bytes.Buffer
	f := &OutputFormatter{Format: "text", Writer: &buf, Verbose: true}

	require.NoError(t, f.Success(Result{Value: "3"}))
	require.NoError(t, f.Error(ErrCodeSingular, "singular matrix", "det = 0"))
	assert.Equal(t, "3\nError [E103]: singular matrix\nDetails: det = 0\n", buf.String())
	assert.Same(t, &buf, f.GetErrWriter())

	var errBuf bytes.Buffer
	f.ErrWriter = &errBuf
	assert.Same(t, &errBuf, f.GetErrWriter())
}

func TestOutputFormatterJSON(t *testing.T) {
	var buf bytes.Buffer
	f := &OutputFormatter{Format: "json", Writer: &buf}

	require.NoError(t, f.Success(Result{Command: "rank", Set: "rational", Value: "2"}))
	assert.JSONEq(t, `{"status":"ok","data":{"command":"rank","set":"rational","value":"2"}}`, buf.String())

	buf.Reset()
	require.NoError(t, f.Error(ErrCodeFlag, "invalid --form", nil))
	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E009", resp.Error.Code)
	assert.Nil(t, resp.Error.Details)
}
