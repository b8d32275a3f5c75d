package scenario

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/thesyncim/uicheck/pkg/session"
)

// upload submits a local file through the upload form and expects the page
// to echo its name.
func upload(ctx context.Context, s *session.Session, c Case) error {
	path, err := c.uploadPath()
	if err != nil {
		return err
	}
	name := filepath.Base(path)

	if err := c.open(ctx, s); err != nil {
		return err
	}
	input, err := c.find(ctx, s, "input")
	if err != nil {
		return err
	}
	if err := input.SetFiles(ctx, path); err != nil {
		return fmt.Errorf("failed to attach %s: %w", path, err)
	}
	submit, err := c.find(ctx, s, "submit")
	if err != nil {
		return err
	}
	if err := submit.Click(ctx); err != nil {
		return fmt.Errorf("failed to submit upload: %w", err)
	}

	result, err := c.Locator("result")
	if err != nil {
		return err
	}
	el, err := s.WaitVisible(ctx, result)
	if err != nil {
		return session.Assertf("upload", "upload result %s not shown: %v", result, err)
	}
	text, err := el.Text(ctx)
	if err != nil {
		return err
	}
	if got := strings.TrimSpace(text); got != name {
		return &session.AssertionError{Check: "uploaded file name", Expected: name, Actual: got}
	}
	s.Logger().WithField("file", name).Info("File uploaded")
	return nil
}

// uploadPath resolves the file param against the working directory and
// fails the check when the file does not exist.
func (c Case) uploadPath() (string, error) {
	path := c.Param("file", "images.png")
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.WorkDir, path)
	}
	path = filepath.Clean(path)

	fs := c.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}
	ok, err := afero.Exists(fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !ok {
		return "", session.Assertf("upload file exists", "File not found: %s", path)
	}
	return path, nil
}
