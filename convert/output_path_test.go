package convert

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"ldc/config"
	"ldc/ldoc"
	"ldc/state"
)

func setupTestEnvForOutputPath(t *testing.T, noDirs bool, transliterate bool, template string) *state.LocalEnv {
	t.Helper()
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	cfg.Document.FileNameTransliterate = transliterate
	cfg.Document.OutputNameTemplate = template

	env := &state.LocalEnv{
		Log:    logger,
		Cfg:    cfg,
		NoDirs: noDirs,
	}
	return env
}

func setupTestDocForPath(t *testing.T) *ldoc.Document {
	t.Helper()
	return &ldoc.Document{
		Version: 1,
		Meta: []ldoc.Term{
			{Name: "title", Values: []string{"Test Document"}},
			{Name: "creator", Values: []string{"John Doe"}},
			{Name: "identifier", Values: []string{"test-doc-id"}},
			{Name: "language", Values: []string{"en"}},
		},
	}
}

func TestBuildOutputPath_SimpleCase_NoDirs(t *testing.T) {
	doc := setupTestDocForPath(t)
	env := setupTestEnvForOutputPath(t, true, false, "")

	result := buildOutputPath(doc, "docs/author/doc.ldoc", "/output", env)
	expected := filepath.Join("/output", "doc.html")

	if result != expected {
		t.Errorf("buildOutputPath() = %q, want %q", result, expected)
	}
}

func TestBuildOutputPath_SimpleCase_WithDirs(t *testing.T) {
	doc := setupTestDocForPath(t)
	env := setupTestEnvForOutputPath(t, false, false, "")

	result := buildOutputPath(doc, "docs/author/doc.ldoc", "/output", env)
	expected := filepath.Join("/output", "docs", "author", "doc.html")

	if result != expected {
		t.Errorf("buildOutputPath() = %q, want %q", result, expected)
	}
}

func TestBuildOutputPath_Transliterate(t *testing.T) {
	doc := setupTestDocForPath(t)
	env := setupTestEnvForOutputPath(t, true, true, "")

	result := buildOutputPath(doc, "Книга.ldoc", "/output", env)
	expected := filepath.Join("/output", "kniga.html")

	if result != expected {
		t.Errorf("buildOutputPath() = %q, want %q", result, expected)
	}
}

func TestBuildOutputPath_Template(t *testing.T) {
	doc := setupTestDocForPath(t)
	env := setupTestEnvForOutputPath(t, true, false, "{{with index .Authors 0}}{{.}}{{end}}/{{.Title}}")

	result := buildOutputPath(doc, "doc.ldoc", "/output", env)
	expected := filepath.Join("/output", "John Doe", "Test Document.html")

	if result != expected {
		t.Errorf("buildOutputPath() = %q, want %q", result, expected)
	}
}

func TestBuildOutputPath_BadTemplateFallsBack(t *testing.T) {
	doc := setupTestDocForPath(t)
	env := setupTestEnvForOutputPath(t, true, false, "{{.NoSuchField}}")

	result := buildOutputPath(doc, "doc.ldoc", "/output", env)
	expected := filepath.Join("/output", "doc.html")

	if result != expected {
		t.Errorf("buildOutputPath() = %q, want %q", result, expected)
	}
}

func TestDetermineOutputDir(t *testing.T) {
	tests := []struct {
		name     string
		noDirs   bool
		expected string
	}{
		{"no dirs", true, "/output"},
		{"with dirs", false, filepath.Join("/output", "docs", "author")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnvForOutputPath(t, tt.noDirs, false, "")
			result := determineOutputDir("docs/author/doc.ldoc", "/output", env)
			if result != tt.expected {
				t.Errorf("determineOutputDir() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestBuildDefaultFileName(t *testing.T) {
	tests := []struct {
		name          string
		src           string
		transliterate bool
		expected      string
	}{
		{"simple", "doc.ldoc", false, "doc.html"},
		{"with path", "path/to/doc.ldoc", false, "doc.html"},
		{"transliterate", "Книга.ldoc", true, "kniga.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnvForOutputPath(t, true, tt.transliterate, "")

			result := buildDefaultFileName(tt.src, env)
			if result != tt.expected {
				t.Errorf("buildDefaultFileName() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestSplitAndCleanPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected []string
	}{
		{"simple path", "author/doc", []string{"author", "doc"}},
		{"single segment", "doc", []string{"doc"}},
		{"with trailing slash", "author/doc/", []string{"author", "doc"}},
		{"three levels", "genre/author/doc", []string{"genre", "author", "doc"}},
		{"empty path", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := splitAndCleanPath(tt.path)
			if len(result) != len(tt.expected) {
				t.Errorf("splitAndCleanPath() length = %d, want %d", len(result), len(tt.expected))
				return
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("splitAndCleanPath()[%d] = %q, want %q", i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestCleanPathSegment(t *testing.T) {
	tests := []struct {
		name          string
		segment       string
		transliterate bool
		expected      string
	}{
		{"simple segment", "author", false, "author"},
		{"with spaces", "My Doc", false, "My Doc"},
		{"transliterate cyrillic", "Автор", true, "avtor"},
		{"special chars", "doc:name", false, "docname"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnvForOutputPath(t, true, tt.transliterate, "")

			result := cleanPathSegment(tt.segment, env)
			if result != tt.expected {
				t.Errorf("cleanPathSegment() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestAssemblePathWithSubdirs(t *testing.T) {
	tests := []struct {
		name          string
		outDir        string
		expandedName  string
		transliterate bool
		expected      string
	}{
		{
			"simple template",
			"/output",
			"author/doc",
			false,
			filepath.Join("/output", "author", "doc.html"),
		},
		{
			"single level",
			"/output",
			"doc",
			false,
			filepath.Join("/output", "doc.html"),
		},
		{
			"with transliterate",
			"/output",
			"Автор/Книга",
			true,
			filepath.Join("/output", "avtor", "kniga.html"),
		},
		{
			"empty path",
			"/output",
			"",
			false,
			"/output",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnvForOutputPath(t, true, tt.transliterate, "")

			result := assemblePathWithSubdirs(tt.outDir, tt.expandedName, env)
			if result != tt.expected {
				t.Errorf("assemblePathWithSubdirs() = %q, want %q", result, tt.expected)
			}
		})
	}
}
