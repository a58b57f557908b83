package converter

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"docpress/pkg/config"

	execute "github.com/alexellis/go-execute/v2"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// Outcome tags the terminal state of one conversion run.
type Outcome int

const (
	Succeeded Outcome = iota
	SpawnError
	TimedOut
	Signaled
	ExitError
	ReadbackError
)

func (o Outcome) String() string {
	switch o {
	case Succeeded:
		return "succeeded"
	case SpawnError:
		return "spawn_error"
	case TimedOut:
		return "timed_out"
	case Signaled:
		return "signaled"
	case ExitError:
		return "exit_error"
	case ReadbackError:
		return "readback_error"
	}
	return "unknown"
}

// Result is the tagged outcome of a supervised run. Stdout/Stderr are always
// captured for diagnostics.
type Result struct {
	Outcome    Outcome
	OutputPath string
	ExitCode   int
	// Signal is set when the child died from a signal, whoever sent it.
	Signal string
	// KilledByTimeout distinguishes our own kill from an external one
	// (e.g. the OOM killer): different remediation for the operator.
	KilledByTimeout bool
	Stdout          string
	Stderr          string
	Err             error
}

// Soffice locates and supervises the LibreOffice converter binary.
type Soffice struct {
	binaries []string
	timeout  time.Duration
	homeDir  string
	log      *zap.Logger

	mu  sync.Mutex
	bin string
}

func NewSoffice(cfg config.ConvertConfig, log *zap.Logger) *Soffice {
	return &Soffice{
		binaries: cfg.Binaries,
		timeout:  cfg.Timeout,
		homeDir:  cfg.TmpDir,
		log:      log,
	}
}

// Detect probes the candidate binaries with --version and caches the first
// one that produces output and exits zero. Probing is idempotent and safe to
// race; the lock only protects the cache.
func (s *Soffice) Detect(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bin != "" {
		return s.bin, nil
	}

	for _, candidate := range s.binaries {
		probeCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
		task := execute.ExecTask{
			Command: candidate,
			Args:    []string{"--version"},
			Env:     []string{"HOME=" + s.homeDir},
		}
		res, err := task.Execute(probeCtx)
		cancel()

		if err == nil && res.ExitCode == 0 && strings.TrimSpace(res.Stdout) != "" {
			s.log.Info("converter binary selected",
				zap.String("bin", candidate),
				zap.String("version", strings.TrimSpace(res.Stdout)))
			s.bin = candidate
			return candidate, nil
		}
		s.log.Debug("converter candidate rejected", zap.String("bin", candidate), zap.Error(err))
	}
	return "", fmt.Errorf("no usable converter among %v", s.binaries)
}

// Version reports the detected binary and its --version output, for the
// environment diagnostics endpoint.
func (s *Soffice) Version(ctx context.Context) (string, string, error) {
	bin, err := s.Detect(ctx)
	if err != nil {
		return "", "", err
	}

	probeCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	task := execute.ExecTask{
		Command: bin,
		Args:    []string{"--version"},
		Env:     []string{"HOME=" + s.homeDir},
	}
	res, err := task.Execute(probeCtx)
	if err != nil {
		return bin, "", err
	}
	return bin, strings.TrimSpace(res.Stdout), nil
}

// Convert runs one PDF→DOCX conversion in an isolated profile directory and
// reports a tagged Result. The caller owns creation and cleanup of inputPath,
// outDir and profileDir.
func (s *Soffice) Convert(ctx context.Context, bin, inputPath, outDir, profileDir string) Result {
	args := []string{
		"--headless",
		"--nologo",
		"--norestore",
		"--nodefault",
		"--nolockcheck",
		"--nocrashreport",
		"-env:UserInstallation=file://" + filepath.ToSlash(profileDir),
		"--convert-to", "docx:MS Word 2007 XML",
		"--outdir", outDir,
		inputPath,
	}

	cmd := exec.Command(bin, args...)
	// LibreOffice writes under HOME even with an isolated profile; pin it to
	// a directory that is writable in constrained deployments.
	cmd.Env = append(os.Environ(), "HOME="+s.homeDir)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Killed converters can leave helper children holding the output pipes;
	// without a wait delay, Wait would block until those exit too.
	cmd.WaitDelay = time.Second

	if err := cmd.Start(); err != nil {
		return Result{Outcome: SpawnError, Err: err}
	}

	// The timeout timer and the process exit race. The flag is only consulted
	// when the wait actually saw a signal, so a late firing is harmless.
	var killedByTimeout atomic.Bool
	timer := time.AfterFunc(s.timeout, func() {
		killedByTimeout.Store(true)
		_ = cmd.Process.Kill()
	})

	waitErr := cmd.Wait()
	timer.Stop()

	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if ws, ok := cmd.ProcessState.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		res.Signal = unix.SignalName(ws.Signal())
		if killedByTimeout.Load() {
			res.Outcome = TimedOut
			res.KilledByTimeout = true
			res.Err = fmt.Errorf("conversion exceeded %s", s.timeout)
		} else {
			res.Outcome = Signaled
			res.Err = fmt.Errorf("converter interrupted by %s", res.Signal)
		}
		return res
	}

	if code := cmd.ProcessState.ExitCode(); code != 0 {
		res.Outcome = ExitError
		res.ExitCode = code
		res.Err = fmt.Errorf("converter exit %d: %w", code, waitErr)
		return res
	}

	// Exit code zero is not proof the document exists.
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	outPath := filepath.Join(outDir, base+".docx")
	if _, err := os.Stat(outPath); err != nil {
		res.Outcome = ReadbackError
		res.Err = fmt.Errorf("converter exited clean but %s is missing: %w", outPath, err)
		return res
	}

	res.Outcome = Succeeded
	res.OutputPath = outPath
	return res
}
