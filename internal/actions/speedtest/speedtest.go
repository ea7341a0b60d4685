// Package speedtest measures latency, download speed and upload speed
// against the nearest speedtest.net server, or a pinned one. The test runs
// in the background and only reports through the output sink.
package speedtest

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	stgo "github.com/showwin/speedtest-go/speedtest"

	"github.com/spaceworld/console/internal/config"
	"github.com/spaceworld/console/internal/dispatchers"
	"github.com/spaceworld/console/internal/domain"
	"github.com/spaceworld/console/internal/log"
)

const defaultTimeout = 2 * time.Minute

var errNoServer = errors.New("no speedtest server available")

type Deps struct {
	// Measure runs one test. serverID 0 picks the nearest server.
	Measure  func(ctx context.Context, serverID int) (Result, error)
	ServerID func() int
	Timeout  time.Duration
	// Go starts the test. Tests run it inline.
	Go func(func())
}

func DefaultDeps() Deps {
	return Deps{
		Measure: func(ctx context.Context, serverID int) (Result, error) {
			return Measure(ctx, stgo.New(), serverID)
		},
		ServerID: configuredServer,
		Timeout:  defaultTimeout,
		Go:       func(f func()) { go f() },
	}
}

// configuredServer reads speedtest_server. Anything but a positive number
// means the nearest server.
func configuredServer() int {
	value, _ := config.Get("speedtest_server")
	return parseServerID(value)
}

func parseServerID(value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	id, err := strconv.Atoi(value)
	if err != nil || id <= 0 {
		log.Warn("speedtest: ignoring speedtest_server=%q", value)
		return 0
	}
	return id
}

// Result holds one test's figures.
type Result struct {
	Server   string
	Download float64 // Mbit/s
	Upload   float64 // Mbit/s
	Ping     time.Duration
}

// Run starts the test and returns at once.
func Run(call dispatchers.Call) error {
	return run(call, DefaultDeps())
}

func run(call dispatchers.Call, deps Deps) error {
	if err := call.ExpectNoArgs(); err != nil {
		return err
	}
	out := call.Out
	out.Append("Running speed test...", domain.ToneMuted)

	serverID := deps.ServerID()
	deps.Go(func() {
		ctx, cancel := context.WithTimeout(context.Background(), deps.Timeout)
		defer cancel()

		res, err := deps.Measure(ctx, serverID)
		if err != nil {
			log.Warn("speedtest: %v", err)
			out.Append(fmt.Sprintf("Speed test failed: %v", err), domain.ToneError)
			return
		}
		if res.Server != "" {
			out.Append("Server: "+res.Server, domain.ToneMuted)
		}
		out.Append(fmt.Sprintf("Download speed: %.2f Mbit/s", res.Download), domain.ToneSuccess)
		out.Append(fmt.Sprintf("Upload speed: %.2f Mbit/s", res.Upload), domain.ToneSuccess)
		out.Append(fmt.Sprintf("Ping: %.2f ms", float64(res.Ping)/float64(time.Millisecond)), domain.ToneSuccess)
	})
	return nil
}

// Measure locates the client, fetches the server list, picks the nearest
// server (or serverID when set), then runs ping, download and upload
// against it.
func Measure(ctx context.Context, client *stgo.Speedtest, serverID int) (Result, error) {
	if _, err := client.FetchUserInfoContext(ctx); err != nil {
		return Result{}, fmt.Errorf("locate client: %w", err)
	}

	servers, err := client.FetchServerListContext(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("fetch servers: %w", err)
	}

	var ids []int
	if serverID > 0 {
		ids = []int{serverID}
	}
	targets, err := servers.FindServer(ids)
	if err != nil {
		return Result{}, fmt.Errorf("find server: %w", err)
	}
	if len(targets) == 0 {
		return Result{}, errNoServer
	}
	server := targets[0]

	if err := server.PingTestContext(ctx, nil); err != nil {
		return Result{}, fmt.Errorf("ping: %w", err)
	}
	if err := server.DownloadTestContext(ctx); err != nil {
		return Result{}, fmt.Errorf("download: %w", err)
	}
	if err := server.UploadTestContext(ctx); err != nil {
		return Result{}, fmt.Errorf("upload: %w", err)
	}

	return Result{
		Server:   fmt.Sprintf("%s (%s, %s)", server.Sponsor, server.Name, server.Country),
		Download: server.DLSpeed.Mbps(),
		Upload:   server.ULSpeed.Mbps(),
		Ping:     server.Latency,
	}, nil
}
