package main

import (
	"bytes"
	"net"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xaitan80/filehttpd/internal/server"
)

func Test_Root_Cmd_Port_In_Use(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := server.DefaultConfig()
	cfg.Port = ln.Addr().(*net.TCPAddr).Port
	cfg.AuditLogPath = filepath.Join(t.TempDir(), "serverLog.log")

	var logs bytes.Buffer
	cmd := newRootCmd(zerolog.New(&logs), cfg)
	cmd.SetArgs([]string{})

	err = cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen on port")
	assert.NotContains(t, logs.String(), "server started")
}

func Test_Root_Cmd_Rejects_Arguments(t *testing.T) {
	cmd := newRootCmd(zerolog.Nop(), server.DefaultConfig())
	cmd.SetArgs([]string{"extra"})

	require.Error(t, cmd.Execute())
}

func Test_Root_Cmd_Version(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(zerolog.Nop(), server.DefaultConfig())
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), version)
}
