package video

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/riskibarqy/demonlist/internal/domain/listerr"
)

// Host identifies one of the supported video platforms.
type Host string

const (
	HostYouTube   Host = "youtube"
	HostVimeo     Host = "vimeo"
	HostEveryplay Host = "everyplay"
	HostTwitch    Host = "twitch"
	HostBilibili  Host = "bilibili"
)

const (
	expectedYouTube   = "https://www.youtube.com/watch?v={video_id}"
	expectedVimeo     = "https://vimeo.com/{video_id}"
	expectedEveryplay = "https://everyplay.com/videos/{video_id}"
	expectedTwitch    = "https://www.twitch.tv/videos/{video_id}"
	expectedBilibili  = "https://www.bilibili.com/video/{video_id}"
)

var (
	youTubeIDPattern   = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
	numericIDPattern   = regexp.MustCompile(`^[0-9]+$`)
	bilibiliIDPattern  = regexp.MustCompile(`^(BV[0-9A-Za-z]{10}|av[0-9]+)$`)
	everyplayIDPattern = regexp.MustCompile(`^[0-9A-Za-z_-]+$`)
)

var hostsByDomain = map[string]Host{
	"youtube.com":       HostYouTube,
	"www.youtube.com":   HostYouTube,
	"m.youtube.com":     HostYouTube,
	"youtu.be":          HostYouTube,
	"vimeo.com":         HostVimeo,
	"www.vimeo.com":     HostVimeo,
	"player.vimeo.com":  HostVimeo,
	"everyplay.com":     HostEveryplay,
	"www.everyplay.com": HostEveryplay,
	"twitch.tv":         HostTwitch,
	"www.twitch.tv":     HostTwitch,
	"m.twitch.tv":       HostTwitch,
	"bilibili.com":      HostBilibili,
	"www.bilibili.com":  HostBilibili,
	"m.bilibili.com":    HostBilibili,
}

// Validate checks that raw points to a video on a supported host and returns
// its canonical form. Two references to the same video normalize to the same
// string, which is what duplicate detection compares.
func Validate(raw string) (string, error) {
	parsed, err := parse(raw)
	if err != nil {
		return "", err
	}

	host, ok := hostsByDomain[strings.ToLower(parsed.Hostname())]
	if !ok {
		return "", listerr.UnsupportedVideoHost()
	}

	segments := pathSegments(parsed.Path)
	switch host {
	case HostYouTube:
		id, ok := youTubeID(parsed, segments)
		if !ok {
			return "", listerr.InvalidURLFormat(expectedYouTube)
		}
		return "https://www.youtube.com/watch?v=" + id, nil
	case HostVimeo:
		if strings.EqualFold(parsed.Hostname(), "player.vimeo.com") {
			if len(segments) != 2 || segments[0] != "video" {
				return "", listerr.InvalidURLFormat(expectedVimeo)
			}
			segments = segments[1:]
		}
		if len(segments) != 1 || !numericIDPattern.MatchString(segments[0]) {
			return "", listerr.InvalidURLFormat(expectedVimeo)
		}
		return "https://vimeo.com/" + segments[0], nil
	case HostEveryplay:
		if len(segments) != 2 || segments[0] != "videos" || !everyplayIDPattern.MatchString(segments[1]) {
			return "", listerr.InvalidURLFormat(expectedEveryplay)
		}
		return "https://everyplay.com/videos/" + segments[1], nil
	case HostTwitch:
		if len(segments) != 2 || segments[0] != "videos" || !numericIDPattern.MatchString(segments[1]) {
			return "", listerr.InvalidURLFormat(expectedTwitch)
		}
		return "https://www.twitch.tv/videos/" + segments[1], nil
	case HostBilibili:
		if len(segments) != 2 || segments[0] != "video" || !bilibiliIDPattern.MatchString(segments[1]) {
			return "", listerr.InvalidURLFormat(expectedBilibili)
		}
		return "https://www.bilibili.com/video/" + segments[1], nil
	}

	return "", listerr.UnsupportedVideoHost()
}

// HostOf reports which supported platform a (validated) reference belongs to.
func HostOf(raw string) (Host, bool) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}
	host, ok := hostsByDomain[strings.ToLower(parsed.Hostname())]
	return host, ok
}

// YouTubeID extracts the video id for call sites that need specifically a
// YouTube reference.
func YouTubeID(raw string) (string, error) {
	parsed, err := parse(raw)
	if err != nil {
		return "", err
	}
	if hostsByDomain[strings.ToLower(parsed.Hostname())] != HostYouTube {
		return "", listerr.NotYouTube()
	}
	id, ok := youTubeID(parsed, pathSegments(parsed.Path))
	if !ok {
		return "", listerr.InvalidURLFormat(expectedYouTube)
	}
	return id, nil
}

// Thumbnail returns the preview image of a YouTube video.
func Thumbnail(raw string) (string, error) {
	id, err := YouTubeID(raw)
	if err != nil {
		return "", err
	}
	return "https://i.ytimg.com/vi/" + id + "/mqdefault.jpg", nil
}

func parse(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, listerr.MalformedVideoURL()
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, listerr.MalformedVideoURL()
	}

	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
	default:
		return nil, listerr.InvalidURLScheme()
	}
	if parsed.User != nil {
		return nil, listerr.URLAuthenticated()
	}

	return parsed, nil
}

func youTubeID(parsed *url.URL, segments []string) (string, bool) {
	var id string
	switch {
	case strings.EqualFold(parsed.Hostname(), "youtu.be"):
		if len(segments) != 1 {
			return "", false
		}
		id = segments[0]
	case len(segments) == 1 && segments[0] == "watch":
		id = parsed.Query().Get("v")
	case len(segments) == 2 && (segments[0] == "embed" || segments[0] == "shorts" || segments[0] == "live"):
		id = segments[1]
	default:
		return "", false
	}

	if !youTubeIDPattern.MatchString(id) {
		return "", false
	}
	return id, true
}

func pathSegments(path string) []string {
	parts := strings.Split(path, "/")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
