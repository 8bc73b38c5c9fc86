// Package cli implements the command line of the batch programs:
// program [flags] <input_file> <output_file>.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/govalues/bignum"
	"github.com/govalues/bignum/internal/batch"
	"github.com/govalues/bignum/internal/config"
	"github.com/govalues/bignum/internal/fileutil"
	"github.com/hyperledger/fabric-lib-go/common/flogging"
	"github.com/hyperledger/fabric-lib-go/common/metrics/disabled"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/alecthomas/kingpin.v2"
)

var logger = flogging.MustGetLogger("bignum.cli")

// Program describes one of the batch programs.
type Program struct {
	Name string
	Help string
	// Task builds the task from the loaded configuration.
	Task func(conf *config.Config) (batch.Task, *bignum.Endianness)
}

var (
	Primality = Program{
		Name: "primecheck",
		Help: "Miller-Rabin primality test of a hexadecimal number, writes 1 (prime) or 0.",
		Task: func(conf *config.Config) (batch.Task, *bignum.Endianness) {
			t := &batch.Primality{Endianness: conf.Primality.Endianness}
			return t, &t.Endianness
		},
	}

	KeyGen = Program{
		Name: "rsakeygen",
		Help: "Derives the RSA private exponent D from hexadecimal P, Q and E.",
		Task: func(conf *config.Config) (batch.Task, *bignum.Endianness) {
			t := &batch.KeyGen{Endianness: conf.KeyGen.Endianness}
			return t, &t.Endianness
		},
	}

	Match = Program{
		Name: "rsamatch",
		Help: "Encrypts plaintexts with a public RSA key and finds them among ciphertexts.",
		Task: func(conf *config.Config) (batch.Task, *bignum.Endianness) {
			t := &batch.Match{Endianness: conf.Match.Endianness}
			return t, &t.Endianness
		},
	}
)

// Run parses the arguments, runs the program and returns its exit code.
func Run(p Program, args []string, stdout, stderr io.Writer) int {
	app := kingpin.New(p.Name, p.Help)
	app.UsageWriter(stdout)
	app.ErrorWriter(stderr)
	terminated, exitCode := false, 0
	app.Terminate(func(code int) {
		terminated, exitCode = true, code
	})

	input := app.Arg("input_file", "File with whitespace-separated input tokens.").Required().String()
	output := app.Arg("output_file", "File to write the result to.").Required().String()
	configPath := app.Flag("config", "YAML configuration file.").Envar("BIGNUM_CONFIG").String()
	endianness := app.Flag("endianness", "Digit order of hexadecimal input tokens, overrides the configuration.").Enum("big", "little")
	verbose := app.Flag("verbose", "Enable debug logging.").Short('v').Bool()

	_, err := app.Parse(args)
	if terminated {
		return exitCode
	}
	if err != nil {
		app.Errorf("%s, try --help", err)
		return 1
	}

	conf, err := config.Load(*configPath)
	if err != nil {
		app.Errorf("%s", err)
		return 1
	}

	spec := conf.Logging.Spec
	if *verbose {
		spec = zapcore.DebugLevel.String()
	}
	err = flogging.Global.Apply(flogging.Config{
		Format:  conf.Logging.Format,
		LogSpec: spec,
		Writer:  stderr,
	})
	if err != nil {
		app.Errorf("invalid logging configuration: %s", err)
		return 1
	}

	task, order := p.Task(conf)
	if *endianness != "" {
		if *order, err = bignum.ParseEndianness(*endianness); err != nil {
			app.Errorf("%s", err)
			return 1
		}
	}
	if logger.IsEnabledFor(zapcore.DebugLevel) {
		if out, err := conf.YAML(); err == nil {
			logger.Debugf("effective configuration:\n%s", out)
		}
	}

	if err := run(task, *input, *output); err != nil {
		logger.Debugf("%s failed: %+v", p.Name, err)
		app.Errorf("%s", err)
		return 1
	}
	return 0
}

func run(task batch.Task, input, output string) error {
	exists, _, err := fileutil.FileExists(input)
	if err != nil {
		return err
	}
	if !exists {
		return errors.Errorf("input file [%s] does not exist", input)
	}
	f, err := os.Open(input)
	if err != nil {
		return errors.Wrapf(err, "error opening input file [%s]", input)
	}
	defer f.Close()

	result, err := batch.NewRunner(&disabled.Provider{}).Process(task, f)
	if err != nil {
		return err
	}

	dir, name := filepath.Split(output)
	if dir == "" {
		dir = "."
	}
	tmpPattern := fmt.Sprintf(".%s.*.tmp", name)
	if err := fileutil.CreateAndSyncFileAtomically(dir, tmpPattern, name, []byte(result), 0o644); err != nil {
		return errors.WithMessagef(err, "error writing output file [%s]", output)
	}
	logger.Infof("%s task wrote %d byte(s) to %s", task.Name(), len(result), output)
	return nil
}
