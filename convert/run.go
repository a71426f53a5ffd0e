package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"ldc/css"
	"ldc/ldoc"
	"ldc/render"
	"ldc/state"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	src, err = filepath.Abs(src)
	if err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	if env.Cfg.Document.StylesheetPath != "" {
		data, err := os.ReadFile(env.Cfg.Document.StylesheetPath)
		if err != nil {
			return fmt.Errorf("unable to read style css from %q: %w", env.Cfg.Document.StylesheetPath, err)
		}
		sheet := css.NewParser(log).Parse(data, env.Cfg.Document.StylesheetPath)
		for _, w := range sheet.Warnings {
			log.Warn("Problem in user stylesheet", zap.String("file", env.Cfg.Document.StylesheetPath), zap.String("problem", w))
		}
		if sheet.Empty() {
			log.Warn("User stylesheet has no usable rules", zap.String("file", env.Cfg.Document.StylesheetPath))
		}
		env.ExtraCSS = data
	}

	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, log)
}

// process handles the core compilation logic independently of CLI framework.
// It determines the input type (directory or single file) and processes
// accordingly.
func process(ctx context.Context, src, dst string, log *zap.Logger) error {
	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("input source was not found (%s): %w", src, err)
	}

	if fi.Mode().IsDir() {
		if err := processDir(ctx, src, dst, log); err != nil {
			return errors.New("unable to process directory")
		}
		return nil
	}

	if !fi.Mode().IsRegular() {
		return fmt.Errorf("unexpected path mode for (%s)", src)
	}
	if !isDocFile(src) {
		return fmt.Errorf("input was not recognized as line document (%s)", src)
	}

	file, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("unable to open file (%s): %w", src, err)
	}
	defer file.Close()

	return processDocument(ctx, file, filepath.Base(src), dst, log)
}

// processDir walks directory tree finding line documents and processes them.
func processDir(ctx context.Context, dir, dst string, log *zap.Logger) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("dir", dir))
		}
	}()

	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		if !isDocFile(path) {
			log.Debug("Skipping file, not recognized as line document", zap.String("file", path))
			return nil
		}

		count++

		file, err := os.Open(path)
		if err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
			return nil
		}
		defer file.Close()

		src := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		if err := processDocument(ctx, file, src, dst, log); err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		}
		return nil
	})
	return err
}

// isDocFile recognizes line documents by extension.
func isDocFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".ldoc")
}

// processDocument compiles a single line document. "src" is part of the
// source path (always including file name) relative to the original path.
// When actual file was specified it will be just base file name without a
// path. When looking inside directory it will be relative path inside
// directory (including base file name). "dst" is the destination directory
// where the compiled file should be written.
func processDocument(ctx context.Context, r io.Reader, src, dst string, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	var refID, outputName string

	log.Info("Compilation starting", zap.String("from", src))
	defer func(start time.Time) {
		// NOTE: some of golang graphic processing libraries are not mature
		// enough, if multiple documents are being processed we do not want to
		// stop.
		if r := recover(); r != nil {
			log.Error("Compilation ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("compilation panic: %v", r)
		} else {
			log.Info("Compilation completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.String("ref_id", refID))
		}
	}(time.Now())

	doc, err := ldoc.Parse(r, log)
	if err != nil {
		return fmt.Errorf("unable to parse line document (%s): %w", src, err)
	}

	if refID, err = doc.NormalizeIdentifier(log); err != nil {
		return fmt.Errorf("unable to normalize document identifier (%s): %w", src, err)
	}

	// Determine output file name and path based on input and configuration.
	outputName = buildOutputPath(doc, src, dst, env)

	// Check if output file already exists
	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
		if err = os.Remove(outputName); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	opts := render.Options{
		BodyOnly:    env.Cfg.Document.BodyOnly,
		AutoHeading: env.Cfg.Document.AutoHeading,
		BodyClasses: env.Cfg.Document.BodyClasses,
		Stylesheets: env.Cfg.Document.Stylesheets,
		ExtraCSS:    env.ExtraCSS,
		Lang:        env.Cfg.Document.Language,
		Images:      env.Cfg.Document.Images,
	}
	if lang := firstTerm(doc, "language"); lang != "" {
		opts.Lang = lang
	}

	out, err := render.RenderString(ctx, doc, opts, log)
	if err != nil {
		return fmt.Errorf("unable to compile document (%s): %w", src, err)
	}

	if err := os.WriteFile(outputName, []byte(out), 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}

	// Store compilation result for debugging
	if env.Rpt != nil {
		env.Rpt.StoreData(fmt.Sprintf("parsed-%s.txt", refID), []byte(doc.String()))
		env.Rpt.Store(fmt.Sprintf("result-%s%s", refID, filepath.Ext(outputName)), outputName)
	}

	return nil
}
