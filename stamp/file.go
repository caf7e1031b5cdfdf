package stamp

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// StampFile applies reqs to the file at path and writes the result back when
// at least one literal changed. Successful requests are persisted even when
// others fail; the report tells them apart. The file is replaced atomically
// and keeps its permissions.
func StampFile(
	ctx context.Context,
	path string,
	p Parser,
	reqs []Request,
	opts ...Option,
) (Report, error) {
	cfg := makeConfig(opts...)

	src, err := os.ReadFile(path)
	if err != nil {
		return Report{}, ErrReadFile.Wrap(err).With(slog.String("path", path))
	}

	report, err := Run(ctx, src, p, reqs, opts...)
	if err != nil || !report.Changed() {
		return report, err
	}

	if cfg.dryRun {
		cfg.logger.InfoContext(ctx, "dry run, file not written",
			slog.String("path", path))

		return report, nil
	}

	if err := ctx.Err(); err != nil {
		return report, ErrWriteFile.Wrap(err).With(slog.String("path", path))
	}

	if err := WriteFile(path, report.Output); err != nil {
		return report, err
	}

	cfg.logger.DebugContext(ctx, "wrote file",
		slog.String("path", path),
		slog.Int("size", len(report.Output)),
	)

	return report, nil
}

// WriteFile replaces the contents of the file at path with data by writing
// a temporary file in the same directory and renaming it over the original.
// Symbolic links are followed. The temporary file is removed on failure.
func WriteFile(path string, data []byte) (err error) {
	fail := func(cause error) error {
		return ErrWriteFile.Wrap(cause).With(slog.String("path", path))
	}

	if resolved, rerr := filepath.EvalSymlinks(path); rerr == nil {
		path = resolved
	}

	mode := fs.FileMode(0o644)
	if info, serr := os.Stat(path); serr == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fail(err)
	}

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fail(err)
	}

	if err = tmp.Chmod(mode); err != nil {
		return fail(err)
	}

	if err = tmp.Sync(); err != nil {
		return fail(err)
	}

	if err = tmp.Close(); err != nil {
		return fail(err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fail(err)
	}

	return nil
}
