package usecase

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"sync"

	"github.com/m-mizutani/aptpages/pkg/domain/interfaces"
	"github.com/m-mizutani/aptpages/pkg/domain/model"
	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/aptpages/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// EnvOutputDir tells an external generator where to write
const EnvOutputDir = "APTPAGES_OUTPUT_DIR"

// CommandGenerator runs an external program (e.g. `python main.py`) as the index generator
type CommandGenerator struct {
	command []string
}

var _ interfaces.Generator = (*CommandGenerator)(nil)

func NewCommandGenerator(command []string) (*CommandGenerator, error) {
	if len(command) == 0 || command[0] == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "generator command is empty")
	}
	return &CommandGenerator{command: command}, nil
}

// CommandEnv returns the environment handed to the generator process
func CommandEnv(base []string, input *model.GenerateInput) []string {
	env := append([]string{}, base...)
	env = append(env,
		"CI=true",
		EnvOutputDir+"="+input.OutputDir,
	)
	if input.Credential != "" {
		env = append(env, "PAT="+string(input.Credential))
	}
	return env
}

func (x *CommandGenerator) Generate(ctx context.Context, input *model.GenerateInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, x.command[0], x.command[1:]...)
	cmd.Dir = input.SourceDir
	cmd.Env = CommandEnv(os.Environ(), input)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return goerr.Wrap(err, "failed to open generator stdout")
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return goerr.Wrap(err, "failed to open generator stderr")
	}

	logger := logging.From(ctx).With(slog.Any("command", x.command))
	logger.Info("starting generator", slog.String("dir", input.SourceDir))

	if err := cmd.Start(); err != nil {
		return goerr.Wrap(err, "failed to start generator", goerr.V("command", x.command))
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go streamLines(&wg, stdout, logger, "stdout")
	go streamLines(&wg, stderr, logger, "stderr")
	wg.Wait()

	if err := cmd.Wait(); err != nil {
		exitCode := -1
		if cmd.ProcessState != nil {
			exitCode = cmd.ProcessState.ExitCode()
		}
		return goerr.Wrap(err, "generator exited with error",
			goerr.V("command", x.command),
			goerr.V("exit_code", exitCode),
		)
	}

	logger.Info("generator finished")
	return nil
}

func streamLines(wg *sync.WaitGroup, r io.Reader, logger *slog.Logger, stream string) {
	defer wg.Done()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		logger.Info(scanner.Text(), slog.String("stream", stream))
	}
	_, _ = io.Copy(io.Discard, r)
}
