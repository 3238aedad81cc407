package audio

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	"path"
	"strings"
	"time"

	"codeberg.org/snonux/define/internal"
)

// Player plays a media URL and blocks until playback has finished
type Player interface {
	Play(ctx context.Context, mediaURL string) error

	// Name returns the player name
	Name() string
}

// command describes an external media player
type command struct {
	name    string
	args    []string
	streams bool // Accepts http URLs directly
}

// knownPlayers in order of preference
var knownPlayers = []command{
	{name: "mpv", args: []string{"--vid=no", "--really-quiet"}, streams: true},
	{name: "ffplay", args: []string{"-nodisp", "-autoexit", "-loglevel", "quiet"}, streams: true},
	{name: "mpg123", args: []string{"-q"}, streams: true},
	{name: "afplay"},                     // macOS
	{name: "play", args: []string{"-q"}}, // SoX
	{name: "paplay"},
	{name: "aplay", args: []string{"-q"}},
}

// ExecPlayer runs the first available player from knownPlayers, or the
// configured one
type ExecPlayer struct {
	preferred  string
	httpClient *http.Client
	log        *slog.Logger

	lookPath func(file string) (string, error)
	run      func(ctx context.Context, name string, args ...string) error
}

// NewPlayer creates a player. preferred may name a player with extra
// arguments, e.g. "mpv --volume=60"; empty means auto detection.
func NewPlayer(preferred string, timeout time.Duration, logger *slog.Logger) *ExecPlayer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ExecPlayer{
		preferred:  strings.TrimSpace(preferred),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("component", "player"),
		lookPath:   exec.LookPath,
		run:        runCommand,
	}
}

// Play plays mediaURL and waits for the player to exit
func (p *ExecPlayer) Play(ctx context.Context, mediaURL string) error {
	cmd, bin, err := p.resolve()
	if err != nil {
		return err
	}

	target := mediaURL
	if !cmd.streams {
		file, err := p.download(ctx, mediaURL)
		if err != nil {
			return err
		}
		defer os.Remove(file)
		target = file
	}

	args := append(append([]string{}, cmd.args...), target)
	p.log.DebugContext(ctx, "starting player", slog.String("player", bin), slog.Any("args", args))

	if err := p.run(ctx, bin, args...); err != nil {
		return fmt.Errorf("%s failed: %w", cmd.name, err)
	}
	return nil
}

// Name returns the configured player or "auto"
func (p *ExecPlayer) Name() string {
	if p.preferred != "" {
		return strings.Fields(p.preferred)[0]
	}
	return "auto"
}

// resolve picks the player command and its executable path
func (p *ExecPlayer) resolve() (command, string, error) {
	if p.preferred != "" {
		fields := strings.Fields(p.preferred)
		cmd := command{name: fields[0], streams: true}
		for _, known := range knownPlayers {
			if known.name == fields[0] {
				cmd = known
				break
			}
		}
		if len(fields) > 1 {
			cmd.args = fields[1:]
		}

		bin, err := p.lookPath(cmd.name)
		if err != nil {
			return command{}, "", fmt.Errorf("player %s not found: %w", cmd.name, err)
		}
		return cmd, bin, nil
	}

	for _, cmd := range knownPlayers {
		if bin, err := p.lookPath(cmd.name); err == nil {
			return cmd, bin, nil
		}
	}
	return command{}, "", fmt.Errorf("no audio player found. Install mpv, ffplay, mpg123, sox, paplay, or aplay")
}

// download saves mediaURL to a temporary file and returns its path
func (p *ExecPlayer) download(ctx context.Context, mediaURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create download request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download failed with status %d", resp.StatusCode)
	}

	name, ext := "pronunciation", ".mp3"
	if u, err := url.Parse(mediaURL); err == nil && path.Ext(u.Path) != "" {
		ext = path.Ext(u.Path)
		name = strings.TrimSuffix(path.Base(u.Path), ext)
	}

	file, err := os.CreateTemp("", "define-"+internal.SanitizeFilename(name)+"-*."+internal.SanitizeFilename(ext[1:]))
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, resp.Body); err != nil {
		os.Remove(file.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return file.Name(), nil
}

func runCommand(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w\nOutput: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}
