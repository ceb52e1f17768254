package services

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"sync"
	"time"

	"conciliador/internal/events"
	shellerrors "conciliador/internal/infrastructure/errors"
	"conciliador/internal/infrastructure/logging"
	"conciliador/internal/netutil"
)

// Status lines multiplexed onto the backend output channels, mirroring what
// the frontend log console expects to see.
const (
	msgSpawning    = "[shell] Spawning backend sidecar on port %d..."
	msgStarted     = "[shell] Backend started successfully"
	msgSpawnFailed = "[shell] Failed to spawn backend sidecar: %v"
	msgExited      = "[shell] Backend process exited unexpectedly. Restarting in %s..."
)

// scanBufferSize caps a single backend output line at 1 MiB.
const scanBufferSize = 1 << 20

// BackendSupervisor keeps one backend process alive for the lifetime of the
// application. It spawns the backend with the assigned port, relays its
// stdout and stderr line by line to the event sink, and restarts it after a
// fixed delay whenever it exits or fails to spawn. The loop never gives up;
// a persistently broken backend produces a visible but non-fatal restart
// cycle.
type BackendSupervisor struct {
	binaryPath   string
	port         netutil.Port
	restartDelay time.Duration
	sink         events.Sink
	logger       logging.Logger

	mu      sync.Mutex
	current *exec.Cmd
	running bool

	stop chan struct{}
	done chan struct{}
}

// NewBackendSupervisor creates a supervisor for the given backend binary.
// The port is passed to every spawn as `--port <port>` and never changes.
func NewBackendSupervisor(binaryPath string, port netutil.Port, restartDelay time.Duration, logger logging.Logger) *BackendSupervisor {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &BackendSupervisor{
		binaryPath:   binaryPath,
		port:         port,
		restartDelay: restartDelay,
		sink:         events.NullSink{},
		logger:       logger,
	}
}

// Port returns the port the backend is launched with. Immutable after
// construction, safe for concurrent readers.
func (s *BackendSupervisor) Port() netutil.Port {
	return s.port
}

// Start launches the supervision loop on a background goroutine. Events are
// published to the given sink; a nil sink discards them.
func (s *BackendSupervisor) Start(sink events.Sink) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	if sink != nil {
		s.sink = sink
	}
	s.running = true
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	go s.superviseLoop()
}

// Stop ends the supervision loop and kills the current backend process tree.
// There is no graceful drain: the backend is not asked to finish anything.
func (s *BackendSupervisor) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	stop := s.stop
	done := s.done
	s.mu.Unlock()

	close(stop)

	// Read the child handle only after the stop channel is closed: the loop
	// either sees the closed channel and kills its own spawn, or publishes
	// the handle before checking, in which case it is visible here.
	s.mu.Lock()
	killProcessTree(s.current)
	s.mu.Unlock()

	<-done
}

// superviseLoop is the restart loop. Two states: running (pipes being
// drained) and backing off (fixed delay before the next spawn attempt).
func (s *BackendSupervisor) superviseLoop() {
	defer close(s.done)

	for {
		select {
		case <-s.stop:
			return
		default:
		}

		s.announceStdout(fmt.Sprintf(msgSpawning, s.port))

		cmd := exec.Command(s.binaryPath, "--port", strconv.Itoa(int(s.port)))
		configureProcAttrs(cmd)

		stdout, err := cmd.StdoutPipe()
		var stderr io.ReadCloser
		if err == nil {
			stderr, err = cmd.StderrPipe()
		}
		if err == nil {
			err = cmd.Start()
		}
		if err != nil {
			spawnErr := shellerrors.NewShellErrorWithContext("SpawnBackend",
				err,
				shellerrors.ErrCodeSpawn,
				map[string]string{"binary": s.binaryPath})
			logging.LogShellError(s.logger, spawnErr, "SpawnBackend", map[string]interface{}{
				"port": int(s.port),
			})
			s.announceStderr(fmt.Sprintf(msgSpawnFailed, err))

			if !s.waitRestartDelay() {
				return
			}
			continue
		}

		s.setCurrent(cmd)

		// Stop may have raced the spawn; it kills whatever handle it saw
		// under the mutex, so a child published after its pass has to be
		// killed here.
		select {
		case <-s.stop:
			killProcessTree(cmd)
		default:
		}

		s.announceStdout(msgStarted)

		// Drain both streams concurrently; each line is forwarded the
		// moment it is read, tagged with its channel.
		var wg sync.WaitGroup
		wg.Add(2)
		go s.relayLines(stdout, events.BackendStdout, &wg)
		go s.relayLines(stderr, events.BackendStderr, &wg)
		wg.Wait()

		waitErr := cmd.Wait()
		s.setCurrent(nil)

		// During shutdown the kill-induced exit is expected; do not report
		// it or back off, just leave.
		select {
		case <-s.stop:
			return
		default:
		}

		// A clean exit (nil waitErr) is still unexpected here: the backend
		// is supposed to outlive every loop iteration.
		exitErr := shellerrors.NewShellErrorWithContext("BackendExited",
			waitErr,
			shellerrors.ErrCodeBackendExit,
			map[string]string{"binary": s.binaryPath})
		s.logger.Warn("Backend process exited unexpectedly",
			"error_code", exitErr.GetCode(),
			"wait_error_class", shellerrors.ClassifyError(waitErr).String(),
			"exit_error", fmt.Sprintf("%v", waitErr),
			"restart_delay", s.restartDelay.String())
		s.announceStderr(fmt.Sprintf(msgExited, s.restartDelay))

		if !s.waitRestartDelay() {
			return
		}
	}
}

// relayLines forwards each line read from the stream to the sink. Reading
// blocks until the backend writes or closes the stream; there is no timeout
// on an alive but silent backend.
func (s *BackendSupervisor) relayLines(r io.Reader, channel string, wg *sync.WaitGroup) {
	defer wg.Done()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), scanBufferSize)

	for scanner.Scan() {
		line := scanner.Text()
		s.sink.Publish(channel, line)

		if channel == events.BackendStderr {
			s.logger.Warn("backend stderr", "line", line)
		} else {
			s.logger.Debug("backend stdout", "line", line)
		}
	}

	if err := scanner.Err(); err != nil {
		// Pipe read errors show up when the process is torn down; the exit
		// handling in the loop covers the restart, so just record it.
		s.logger.Debug("backend stream closed with error", "channel", channel, "error", err.Error())
	}
}

// announceStdout publishes a status line on the stdout channel and logs it
func (s *BackendSupervisor) announceStdout(msg string) {
	s.logger.Info(msg)
	s.sink.Publish(events.BackendStdout, msg)
}

// announceStderr publishes a status line on the stderr channel and logs it
func (s *BackendSupervisor) announceStderr(msg string) {
	s.logger.Error(msg)
	s.sink.Publish(events.BackendStderr, msg)
}

// setCurrent records the child handle so Stop can kill it
func (s *BackendSupervisor) setCurrent(cmd *exec.Cmd) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = cmd
}

// waitRestartDelay blocks for the fixed restart interval. Returns false if
// the supervisor was stopped while waiting.
func (s *BackendSupervisor) waitRestartDelay() bool {
	select {
	case <-s.stop:
		return false
	case <-time.After(s.restartDelay):
		return true
	}
}
