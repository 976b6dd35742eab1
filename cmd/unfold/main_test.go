package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	out := new(bytes.Buffer)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestDecodeCmd(t *testing.T) {
	in := "dn: cn=foo,\r\n dc=example\r\ncn: foo\r\n"

	for _, strategy := range []string{strategyForward, strategyBackward, strategyStream} {
		t.Run(strategy, func(t *testing.T) {
			out, err := execute(t, in, "decode", "--strategy", strategy, "-")
			require.NoError(t, err)
			assert.Equal(t, "dn: cn=foo,dc=example\r\ncn: foo\r\n", out)
		})
	}
}

func TestDecodeCmdFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.ldif")
	require.NoError(t, os.WriteFile(path, []byte("a\n b\n"), 0644))

	out, err := execute(t, "", "decode", path)
	require.NoError(t, err)
	assert.Equal(t, "ab\n", out)

	out, err = execute(t, "", "decode", "--strategy", strategyStream, path)
	require.NoError(t, err)
	assert.Equal(t, "ab\n", out)

	_, err = execute(t, "", "decode", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestDecodeCmdUnknownStrategy(t *testing.T) {
	_, err := execute(t, "a", "decode", "--strategy", "sideways")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sideways")
}

func TestFoldCmd(t *testing.T) {
	out, err := execute(t, "abcdefghij", "fold", "--width", "4", "--break", "lf")
	require.NoError(t, err)
	assert.Equal(t, "abcd\n efg\n hij", out)

	unfolded, err := execute(t, out, "decode")
	require.NoError(t, err)
	assert.Equal(t, "abcdefghij", unfolded)
}

func TestFoldCmdErrors(t *testing.T) {
	_, err := execute(t, "abc", "fold", "--break", "tab")
	require.Error(t, err)

	_, err = execute(t, "abc", "fold", "--width", "1")
	require.Error(t, err)
}

func TestCheckCmd(t *testing.T) {
	out, err := execute(t, "", "check", "--trials", "200", "--workers", "3", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, "200 trials, 0 mismatches\n", out)
}

func TestRunCheckReportsMismatches(t *testing.T) {
	saved := checkStrategies
	checkStrategies = []checkStrategy{{"identity", func(s string) string { return s }}}
	defer func() { checkStrategies = saved }()

	core, logs := observer.New(zap.ErrorLevel)
	res, err := runCheck(context.Background(), zap.New(core), checkOptions{trials: 100, seed: 3, workers: 2, maxReports: 5})
	require.NoError(t, err)

	assert.Equal(t, int64(100), res.trials)
	assert.Positive(t, res.mismatches)
	assert.Equal(t, 5, logs.FilterMessage("mismatch").Len())
}

func TestRunCheckCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runCheck(ctx, zap.NewNop(), checkOptions{trials: 10, workers: 1})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunCheckInvalidTrials(t *testing.T) {
	_, err := runCheck(context.Background(), zap.NewNop(), checkOptions{trials: -1})
	require.Error(t, err)
}
