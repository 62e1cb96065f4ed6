package export

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"text/template"
	"time"

	"github.com/jonathan/portfolio-builder/internal/types"
)

// Stage names a packaging step
type Stage string

// Packaging stages in the order they run
const (
	StageRender     Stage = "render"
	StageReadme     Stage = "readme"
	StageManifest   Stage = "manifest"
	StageDeployment Stage = "deployment"
	StageCompress   Stage = "compress"
	StageDone       Stage = "done"
)

var stagePercent = map[Stage]int{
	StageRender:     10,
	StageReadme:     30,
	StageManifest:   50,
	StageDeployment: 70,
	StageCompress:   90,
	StageDone:       100,
}

// Progress is reported once per stage as it starts
type Progress struct {
	Stage   Stage `json:"stage"`
	Percent int   `json:"percent"`
}

// ProgressFunc receives progress updates. It is called on the packaging goroutine.
type ProgressFunc func(Progress)

// Archive file names
const (
	FileIndex      = "index.html"
	FileReadme     = "README.md"
	FileManifest   = "package.json"
	FileDeployment = "DEPLOYMENT.md"
)

// Document is a generated static page and the template that produced it
type Document struct {
	HTML     string
	Template types.TemplateInfo
}

// Archive is a finished zip held in memory
type Archive struct {
	Name      string    `json:"name"`
	Files     []string  `json:"files"`
	Size      int       `json:"size"`
	CreatedAt time.Time `json:"created_at"`
	Data      []byte    `json:"-"`
}

// Manifest is the package.json shipped with the archive
type Manifest struct {
	Name        string            `json:"name"`
	Version     string            `json:"version"`
	Description string            `json:"description"`
	Main        string            `json:"main"`
	Scripts     map[string]string `json:"scripts"`
	Keywords    []string          `json:"keywords"`
	Author      string            `json:"author"`
	License     string            `json:"license"`
}

var readmeTemplate = template.Must(template.ParseFS(templateFiles, "templates/readme.md.tmpl"))

var (
	whitespace = regexp.MustCompile(`\s+`)
	unsafeName = regexp.MustCompile(`[/\\:*?"<>|\x00-\x1f]`)
)

// ArchiveName derives the download file name from the user's name. Whitespace
// runs become a single '-'. A blank name yields "portfolio-source.zip".
func ArchiveName(name string) string {
	slug := whitespace.ReplaceAllString(strings.TrimSpace(name), "-")
	slug = unsafeName.ReplaceAllString(slug, "")
	if slug == "" {
		return "portfolio-source.zip"
	}
	return slug + "-portfolio-source.zip"
}

// NewManifest builds the package.json content for name
func NewManifest(name string) Manifest {
	slug := whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
	pkg := "portfolio"
	if slug != "" {
		pkg = slug + "-portfolio"
	}
	return Manifest{
		Name:        pkg,
		Version:     "1.0.0",
		Description: "Portfolio website for " + name,
		Main:        FileIndex,
		Scripts: map[string]string{
			"start": "npx serve .",
			"build": "echo 'No build step required'",
		},
		Keywords: []string{"portfolio", "website", "personal"},
		Author:   name,
		License:  "MIT",
	}
}

// Packager builds archives. The zero value is ready to use.
type Packager struct {
	// Now defaults to time.Now
	Now func() time.Time
}

// Package builds the archive with the default Packager
func Package(ctx context.Context, doc Document, state *types.PortfolioState, progress ProgressFunc) (*Archive, error) {
	return Packager{}.Package(ctx, doc, state, progress)
}

// Package assembles index.html, README.md, package.json and DEPLOYMENT.md into a
// zip. Either the whole archive is returned or a *PackagingError.
func (p Packager) Package(ctx context.Context, doc Document, state *types.PortfolioState, progress ProgressFunc) (*Archive, error) {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	report := func(s Stage) error {
		if err := ctx.Err(); err != nil {
			return &PackagingError{Stage: s, Message: "cancelled", Cause: err}
		}
		if progress != nil {
			progress(Progress{Stage: s, Percent: stagePercent[s]})
		}
		return nil
	}

	if state == nil {
		return nil, &PackagingError{Stage: StageRender, Message: "no portfolio state"}
	}
	if err := report(StageRender); err != nil {
		return nil, err
	}
	if strings.TrimSpace(doc.HTML) == "" {
		return nil, &PackagingError{Stage: StageRender, Message: "empty document"}
	}
	createdAt := now()
	name := state.UserData.Name

	if err := report(StageReadme); err != nil {
		return nil, err
	}
	var readme bytes.Buffer
	err := readmeTemplate.Execute(&readme, map[string]string{
		"Name":         name,
		"TemplateID":   doc.Template.ID,
		"TemplateName": doc.Template.Name,
		"GeneratedOn":  createdAt.Format("1/2/2006"),
	})
	if err != nil {
		return nil, &PackagingError{Stage: StageReadme, Message: "failed to render readme", Cause: err}
	}

	if err := report(StageManifest); err != nil {
		return nil, err
	}
	manifest, err := json.MarshalIndent(NewManifest(name), "", "  ")
	if err != nil {
		return nil, &PackagingError{Stage: StageManifest, Message: "failed to encode manifest", Cause: err}
	}

	if err := report(StageDeployment); err != nil {
		return nil, err
	}
	deployment, err := templateFiles.ReadFile("templates/deployment.md")
	if err != nil {
		return nil, &PackagingError{Stage: StageDeployment, Message: "failed to load deployment guide", Cause: err}
	}

	if err := report(StageCompress); err != nil {
		return nil, err
	}
	files := []struct {
		name string
		data []byte
	}{
		{FileIndex, []byte(doc.HTML)},
		{FileReadme, readme.Bytes()},
		{FileManifest, manifest},
		{FileDeployment, deployment},
	}
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	names := make([]string, 0, len(files))
	for _, f := range files {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: f.name, Method: zip.Deflate, Modified: createdAt})
		if err != nil {
			return nil, &PackagingError{Stage: StageCompress, Message: "failed to add " + f.name, Cause: err}
		}
		if _, err := w.Write(f.data); err != nil {
			return nil, &PackagingError{Stage: StageCompress, Message: "failed to write " + f.name, Cause: err}
		}
		names = append(names, f.name)
	}
	if err := zw.Close(); err != nil {
		return nil, &PackagingError{Stage: StageCompress, Message: "failed to finalise archive", Cause: err}
	}

	if err := report(StageDone); err != nil {
		return nil, err
	}
	return &Archive{
		Name:      ArchiveName(name),
		Files:     names,
		Size:      buf.Len(),
		CreatedAt: createdAt,
		Data:      buf.Bytes(),
	}, nil
}
