package stamp_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ardnew/cppstamp/cpp"
	"github.com/ardnew/cppstamp/log"
	"github.com/ardnew/cppstamp/stamp"
)

func writeSource(t *testing.T, content string, mode os.FileMode) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "version.cpp")
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		t.Fatal(err)
	}

	return path
}

func stampFile(path string, opts []stamp.Option, args ...string) (stamp.Report, error) {
	opts = append([]stamp.Option{
		stamp.WithClock(func() time.Time { return instant }),
		stamp.WithLocation(time.UTC),
		stamp.WithLogger(log.Make(nil)),
	}, opts...)

	return stamp.StampFile(context.Background(), path,
		cpp.New(cpp.WithLogger(log.Make(nil))), stamp.ParseRequests(args...), opts...)
}

func TestStampFile_PartialPersisted(t *testing.T) {
	path := writeSource(t, "const char* a = \"x\";\nconst double b = 1.5;\n", 0o640)

	report, err := stampFile(path, nil, "a=new", "b=2")
	if err != nil {
		t.Fatalf("StampFile() error = %v", err)
	}

	if report.OK() {
		t.Error("OK() = true, want a failed request")
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if want := "const char* a = \"new\";\nconst double b = 1.5;\n"; string(got) != want {
		t.Errorf("file = %q, want %q", got, want)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	if info.Mode().Perm() != 0o640 {
		t.Errorf("mode = %v, want 0640", info.Mode().Perm())
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only the source", len(entries))
	}
}

func TestStampFile_Unchanged(t *testing.T) {
	path := writeSource(t, "const int n = 1;\n", 0o644)

	old := time.Now().Add(-time.Hour).Truncate(time.Second)
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatal(err)
	}

	if _, err := stampFile(path, nil, "n=1"); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	if !info.ModTime().Equal(old) {
		t.Errorf("file rewritten although nothing changed")
	}
}

func TestStampFile_DryRun(t *testing.T) {
	const content = "const int n = 1;\n"
	path := writeSource(t, content, 0o644)

	report, err := stampFile(path, []stamp.Option{stamp.WithDryRun(true)}, "n=2")
	if err != nil {
		t.Fatal(err)
	}

	if string(report.Output) != "const int n = 2;\n" {
		t.Errorf("Output = %q", report.Output)
	}

	got, _ := os.ReadFile(path)
	if string(got) != content {
		t.Errorf("dry run wrote the file: %q", got)
	}
}

func TestStampFile_ParseFailedNotWritten(t *testing.T) {
	const content = "const int n = ;\n"
	path := writeSource(t, content, 0o644)

	report, err := stampFile(path, nil, "n=2")
	if err != nil {
		t.Fatalf("StampFile() error = %v", err)
	}

	if got := report.Results[0].Status; got != stamp.ParseFailed {
		t.Errorf("Status = %v, want parse-failed", got)
	}

	got, _ := os.ReadFile(path)
	if string(got) != content {
		t.Errorf("file changed after parse failure: %q", got)
	}
}

func TestStampFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.cpp")

	if _, err := stampFile(path, nil, "n=1"); !errors.Is(err, stamp.ErrReadFile) {
		t.Errorf("StampFile() error = %v, want ErrReadFile", err)
	}
}

func TestWriteFile_Symlink(t *testing.T) {
	target := writeSource(t, "old", 0o600)
	link := filepath.Join(t.TempDir(), "link.cpp")

	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	if err := stamp.WriteFile(link, []byte("new")); err != nil {
		t.Fatal(err)
	}

	if fi, err := os.Lstat(link); err != nil || fi.Mode()&os.ModeSymlink == 0 {
		t.Errorf("link replaced by a regular file")
	}

	if got, _ := os.ReadFile(target); string(got) != "new" {
		t.Errorf("target = %q, want %q", got, "new")
	}
}

func TestWriteFile_ReadOnlyDir(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "f.cpp")

	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := os.Chmod(dir, 0o500); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o700) })

	if err := stamp.WriteFile(path, []byte("new")); !errors.Is(err, stamp.ErrWriteFile) {
		t.Errorf("WriteFile() error = %v, want ErrWriteFile", err)
	}

	if got, _ := os.ReadFile(path); string(got) != "old" {
		t.Errorf("file = %q, want unchanged", got)
	}
}
