package cmd

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/7blacky7/ranobe/provider"
	"github.com/7blacky7/ranobe/selector"
)

const fakeText = "# Overlord - Chapter 5\n\n_\"Who are you?\"_  asked Ainz.\n\n"

func ranobe(title, rawURL string) provider.Ranobe {
	r, err := provider.New(title, rawURL)
	if err != nil {
		panic(err)
	}
	return r
}

var fakePages = [][]provider.Ranobe{
	{
		ranobe("Overlord - Chapter 5", "https://example.com/overlord/5"),
		ranobe("Re:Zero Chapter 12", "https://example.com/re-zero/12"),
	},
	{
		ranobe("Re:Zero Chapter 12", "https://example.com/re-zero/12"),
		ranobe("Mushoku Tensei Chapter 3", "https://example.com/mushoku/3"),
	},
}

// fakeScraper liefert feste Seiten ohne Netzwerk
type fakeScraper struct {
	failPage int
	empty    bool
}

func (f fakeScraper) Name() string {
	if f.empty {
		return "empty"
	}
	return "fake"
}

func (f fakeScraper) Latest(_ context.Context, page int) ([]provider.Ranobe, error) {
	if f.failPage > 0 && page == f.failPage {
		return nil, errors.New("boom")
	}
	if f.empty || page >= len(fakePages) {
		return nil, nil
	}
	return fakePages[page], nil
}

func (fakeScraper) Text(_ context.Context, u *url.URL) (provider.Chapter, error) {
	if u.Path != "/overlord/5" {
		return provider.Chapter{}, provider.ErrNoContent
	}
	return provider.Chapter{Title: "Overlord - Chapter 5", Text: fakeText}, nil
}

func init() {
	provider.Register("fake", func() provider.Scraper { return fakeScraper{} })
	provider.Register("empty", func() provider.Scraper { return fakeScraper{empty: true} })
}

// stubInteract ersetzt den Selector. choose bekommt die Labels und
// liefert das Ergebnis von Interact.
func stubInteract(t *testing.T, choose func(labels []string) (int, bool, error)) {
	t.Helper()
	orig := interact
	t.Cleanup(func() { interact = orig })

	interact = func(f *selector.FuzzySelect) (int, bool, error) {
		labels := make([]string, f.Len())
		for i := range labels {
			labels[i] = f.ItemAt(i).Label
		}
		return choose(labels)
	}
}

func pickLabel(want string) func([]string) (int, bool, error) {
	return func(labels []string) (int, bool, error) {
		for i, l := range labels {
			if l == want {
				return i, true, nil
			}
		}
		return 0, false, errors.New("label not offered: " + want)
	}
}

func cancel([]string) (int, bool, error) { return 0, false, nil }

// run fuehrt die CLI mit args aus
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "")
	t.Setenv("RANOBE_DEBUG", "")
	t.Setenv("RANOBE_THEME", "plain")
	t.Setenv("RANOBE_SIZE", "")

	var stdout, stderr bytes.Buffer
	cli := NewCLI()
	cli.SetArgs(args)
	cli.SetIn(strings.NewReader(stdin))
	cli.SetOut(&stdout)
	cli.SetErr(&stderr)

	err := cli.ExecuteContext(t.Context())
	return stdout.String(), stderr.String(), err
}

func TestList(t *testing.T) {
	stdout, stderr, err := run(t, "", "list", "-r", "fake", "--pages", "2")
	require.NoError(t, err)
	require.Equal(t, "Latest on fake:\n", stderr)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 4, "Kopfzeile plus drei Eintraege: %q", stdout)
	require.Contains(t, lines[0], "TITLE")

	want := []string{"Overlord - Chapter 5", "Re:Zero Chapter 12", "Mushoku Tensei Chapter 3"}
	for i, title := range want {
		require.True(t, strings.HasPrefix(lines[i+1], strconv.Itoa(i+1)), "Zeile %q", lines[i+1])
		require.Contains(t, lines[i+1], title)
	}
	require.Equal(t, 1, strings.Count(stdout, "re-zero/12"))
}

func TestDebugLogsConfiguration(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("RANOBE_SIZE", "")
	t.Setenv("RANOBE_THEME", "plain")
	t.Setenv("RANOBE_DEBUG", "1")
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var stderr bytes.Buffer
	cli := NewCLI()
	cli.SetArgs([]string{"list", "-r", "fake"})
	cli.SetOut(&bytes.Buffer{})
	cli.SetErr(&stderr)
	require.NoError(t, cli.ExecuteContext(t.Context()))

	require.Contains(t, stderr.String(), "msg=configuration command=list")
	require.Contains(t, stderr.String(), "RANOBE_THEME:plain")
}

func TestLatest(t *testing.T) {
	t.Run("dedup", func(t *testing.T) {
		got, err := latest(t.Context(), fakeScraper{}, 3)
		require.NoError(t, err)

		var urls []string
		for _, r := range got {
			urls = append(urls, r.URL.String())
		}
		want := []string{
			"https://example.com/overlord/5",
			"https://example.com/re-zero/12",
			"https://example.com/mushoku/3",
		}
		if diff := cmp.Diff(want, urls); diff != "" {
			t.Errorf("URLs (-want +got):\n%s", diff)
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := latest(t.Context(), fakeScraper{failPage: 1}, 2)
		require.ErrorContains(t, err, "page 1: boom")
	})
}

func TestRead(t *testing.T) {
	if _, err := exec.LookPath("cat"); err != nil {
		t.Skip("cat nicht gefunden")
	}
	t.Setenv("RANOBE_PAGER", "cat")

	var offered []string
	stubInteract(t, func(labels []string) (int, bool, error) {
		offered = labels
		return pickLabel("Overlord - Chapter 5")(labels)
	})

	stdout, _, err := run(t, "", "read", "-r", "fake", "--wrap", "200")
	require.NoError(t, err)
	require.Equal(t, fakeText, stdout)
	require.Equal(t, []string{"Overlord - Chapter 5", "Re:Zero Chapter 12"}, offered)
}

func TestReadIsDefault(t *testing.T) {
	t.Setenv("RANOBE_PAGER", "cat")
	stubInteract(t, cancel)

	stdout, stderr, err := run(t, "", "-r", "fake")
	require.NoError(t, err)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "You didn't select anything")
}

func TestReadNoContent(t *testing.T) {
	stubInteract(t, pickLabel("Re:Zero Chapter 12"))

	_, _, err := run(t, "", "read", "-r", "fake")
	require.ErrorIs(t, err, provider.ErrNoContent)
}

func TestDownload(t *testing.T) {
	cases := []struct {
		name  string
		stdin string
		args  []string
		file  string
	}{
		{"default name", "\n", nil, "overlord-chapter-5.md"},
		{"custom name", "mine.md\n", nil, "mine.md"},
		{"path stripped", "../../escape.md\n", nil, "escape.md"},
		{"yes", "", []string{"-y"}, "overlord-chapter-5.md"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			stubInteract(t, pickLabel("Overlord - Chapter 5"))
			dir := filepath.Join(t.TempDir(), "novels")

			args := append([]string{"download", "-r", "fake", "-o", dir}, tt.args...)
			stdout, _, err := run(t, tt.stdin, args...)
			require.NoError(t, err)

			path := filepath.Join(dir, tt.file)
			require.Equal(t, path+"\n", stdout)

			b, err := os.ReadFile(path)
			require.NoError(t, err)
			require.Equal(t, fakeText, string(b))
		})
	}
}

func TestDownloadCancel(t *testing.T) {
	stubInteract(t, cancel)
	dir := filepath.Join(t.TempDir(), "novels")

	_, stderr, err := run(t, "", "download", "-r", "fake", "-o", dir)
	require.NoError(t, err)
	require.Contains(t, stderr, "You didn't select anything")

	_, err = os.Stat(dir)
	require.True(t, os.IsNotExist(err), "Verzeichnis sollte nicht angelegt werden")
}

func TestPick(t *testing.T) {
	cases := []struct {
		name   string
		stdin  string
		args   []string
		choose func([]string) (int, bool, error)
		stdout string
		stderr string
	}{
		{
			name:   "args",
			args:   []string{"alpha", "beta", "gamma"},
			choose: pickLabel("beta"),
			stdout: "beta\n",
		},
		{
			name:   "stdin lines",
			stdin:  "one\n\n  two  \nthree\n",
			choose: pickLabel("two"),
			stdout: "two\n",
		},
		{
			name:   "demo",
			choose: pickLabel("Ice Cream"),
			stdout: "Enjoy your Ice Cream!\n",
		},
		{
			name:   "cancel",
			args:   []string{"alpha"},
			choose: cancel,
			stderr: "You didn't select anything\n",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			stubInteract(t, tt.choose)

			stdout, stderr, err := run(t, tt.stdin, append([]string{"pick"}, tt.args...)...)
			require.NoError(t, err)
			require.Equal(t, tt.stdout, stdout)
			require.Contains(t, stderr, tt.stderr)
		})
	}
}

func TestPickError(t *testing.T) {
	stubInteract(t, func([]string) (int, bool, error) { return 0, false, selector.ErrNoTerminal })

	_, _, err := run(t, "", "pick", "alpha")
	require.ErrorIs(t, err, selector.ErrNoTerminal)
}

func TestOptions(t *testing.T) {
	t.Run("unknown provider", func(t *testing.T) {
		_, _, err := run(t, "", "list", "-r", "readlightnovl")
		require.ErrorIs(t, err, provider.ErrUnknown)
		require.ErrorContains(t, err, `did you mean "readlightnovel"?`)
	})

	t.Run("size", func(t *testing.T) {
		_, _, err := run(t, "", "list", "-r", "fake", "-s", "0")
		require.ErrorContains(t, err, "size must be a positive number")
	})

	t.Run("theme", func(t *testing.T) {
		_, _, err := run(t, "", "list", "-r", "fake", "--theme", "neon")
		require.ErrorContains(t, err, `unknown theme "neon"`)
	})

	t.Run("no color", func(t *testing.T) {
		cli := NewCLI()
		require.NoError(t, cli.ParseFlags([]string{"--theme", "colorful"}))

		t.Setenv("NO_COLOR", "1")
		opts, err := optionsFromFlags(cli)
		require.NoError(t, err)
		require.Equal(t, selector.SimpleTheme{}, opts.Theme)

		t.Setenv("NO_COLOR", "")
		opts, err = optionsFromFlags(cli)
		require.NoError(t, err)
		require.IsType(t, &selector.ColorfulTheme{}, opts.Theme)
	})
}

func TestReportedErrors(t *testing.T) {
	cases := []struct {
		name   string
		args   []string
		stderr string
	}{
		{"size", []string{"list", "-r", "fake", "-s", "0"}, "error: size must be a positive number, got 0\n"},
		{"theme", []string{"list", "-r", "fake", "--theme", "neon"}, "error: unknown theme \"neon\"\n"},
		{"provider", []string{"list", "-r", "nope"}, "error: unknown provider \"nope\""},
		{"nothing found", []string{"read", "-r", "empty"}, "error: no ranobe found\n"},
		{"pick size", []string{"pick", "--size=-3", "alpha"}, "error: size must be a positive number, got -3\n"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			stubInteract(t, func([]string) (int, bool, error) {
				return 0, false, errors.New("selector should not start")
			})

			stdout, stderr, err := run(t, "", tt.args...)
			require.ErrorIs(t, err, ErrReported)
			require.Empty(t, stdout)
			require.True(t, strings.HasPrefix(stderr, tt.stderr), "stderr %q", stderr)
		})
	}
}
