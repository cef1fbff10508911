package forge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// CallTimeout is the wall-clock ceiling applied to every CLI
// invocation; a worker that exceeds it reports ErrTransient.
const CallTimeout = 30 * time.Second

// Adapter launches the gh CLI in workDir. It probes availability once,
// at construction time, and every operation short-circuits to
// ErrUnavailable afterward if the probe failed.
type Adapter struct {
	workDir   string
	available bool
}

// NewAdapter probes for the gh CLI (present on PATH and authenticated)
// and returns an Adapter. The probe result is cached; PR operations are
// cheap to call repeatedly even when the CLI is unavailable.
func NewAdapter(workDir string) *Adapter {
	a := &Adapter{workDir: workDir}
	a.available = probe(workDir)
	return a
}

// Available reports whether the forge CLI was found usable at startup.
func (a *Adapter) Available() bool { return a.available }

func probe(workDir string) bool {
	if _, err := exec.LookPath("gh"); err != nil {
		return false
	}
	cmd := exec.Command("gh", "auth", "status")
	cmd.Dir = workDir
	return cmd.Run() == nil
}

func (a *Adapter) run(ctx context.Context, args ...string) ([]byte, error) {
	if !a.available {
		return nil, wrap(KindUnavailable, ErrUnavailable)
	}

	ctx, cancel := context.WithTimeout(ctx, CallTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "gh", args...)
	cmd.Dir = a.workDir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if ctx.Err() == context.DeadlineExceeded {
		return nil, wrap(KindTransient, fmt.Errorf("%s: timed out", strings.Join(args, " ")))
	}
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, wrap(KindTransient, fmt.Errorf("gh %s: %s", strings.Join(args, " "), msg))
	}
	return output, nil
}

// prListItem mirrors gh pr list --json's field names.
type prListItem struct {
	Number         int    `json:"number"`
	Title          string `json:"title"`
	HeadRefName    string `json:"headRefName"`
	CreatedAt      time.Time `json:"createdAt"`
	ReviewDecision string `json:"reviewDecision"`
	Author         struct {
		Login string `json:"login"`
	} `json:"author"`
}

// ListOpenPRs lists the open pull requests in the current repository.
func (a *Adapter) ListOpenPRs(ctx context.Context) ([]PrSummary, error) {
	output, err := a.run(ctx, "pr", "list",
		"--json", "number,title,headRefName,createdAt,reviewDecision,author",
		"--limit", "50")
	if err != nil {
		return nil, err
	}

	var items []prListItem
	if err := json.Unmarshal(output, &items); err != nil {
		return nil, wrap(KindTransient, fmt.Errorf("parse pr list: %w", err))
	}

	summaries := make([]PrSummary, 0, len(items))
	for _, it := range items {
		summaries = append(summaries, PrSummary{
			Number:         it.Number,
			Title:          it.Title,
			Author:         it.Author.Login,
			HeadRef:        it.HeadRefName,
			ReviewDecision: it.ReviewDecision,
			CreatedAt:      it.CreatedAt,
		})
	}
	return summaries, nil
}

// prViewItem mirrors gh pr view --json's field names for a single PR.
type prViewItem struct {
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	State     string    `json:"state"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
	Author    struct {
		Login string `json:"login"`
	} `json:"author"`
	Reviews []struct {
		Author struct {
			Login string `json:"login"`
		} `json:"author"`
		State string `json:"state"`
		Body  string `json:"body"`
	} `json:"reviews"`
	Comments []struct {
		Author struct {
			Login string `json:"login"`
		} `json:"author"`
		Body string `json:"body"`
	} `json:"comments"`
}

const prViewFields = "number,title,body,state,url,createdAt,author,reviews,comments"

// GetPRForBranch returns the open pull request for branch, or nil if
// there is none.
func (a *Adapter) GetPRForBranch(ctx context.Context, branch string) (*PrInfo, error) {
	output, err := a.run(ctx, "pr", "view", branch, "--json", prViewFields)
	if err != nil {
		if strings.Contains(err.Error(), "no pull requests found") {
			return nil, nil
		}
		return nil, err
	}
	return a.decodePR(ctx, output)
}

// GetPRByNumber returns PR n in full, including grouped line comments.
func (a *Adapter) GetPRByNumber(ctx context.Context, n int) (*PrInfo, error) {
	output, err := a.run(ctx, "pr", "view", fmt.Sprint(n), "--json", prViewFields)
	if err != nil {
		return nil, err
	}
	return a.decodePR(ctx, output)
}

func (a *Adapter) decodePR(ctx context.Context, output []byte) (*PrInfo, error) {
	var v prViewItem
	if err := json.Unmarshal(output, &v); err != nil {
		return nil, wrap(KindTransient, fmt.Errorf("parse pr view: %w", err))
	}

	info := &PrInfo{
		Number:    v.Number,
		Title:     v.Title,
		Body:      v.Body,
		Author:    v.Author.Login,
		State:     v.State,
		URL:       v.URL,
		CreatedAt: v.CreatedAt,
	}
	for _, r := range v.Reviews {
		info.Reviews = append(info.Reviews, Review{Author: r.Author.Login, State: r.State, Body: r.Body})
	}
	for _, c := range v.Comments {
		info.GeneralComments = append(info.GeneralComments, Comment{Author: c.Author.Login, Body: c.Body})
	}

	lineComments, err := a.listLineComments(ctx, v.Number)
	if err != nil {
		return info, err
	}
	info.FileComments = groupByPath(lineComments)
	return info, nil
}

type reviewComment struct {
	Path string `json:"path"`
	Line int    `json:"line"`
	Side string `json:"side"`
	Body string `json:"body"`
	User struct {
		Login string `json:"login"`
	} `json:"user"`
}

func (a *Adapter) listLineComments(ctx context.Context, n int) ([]struct {
	path string
	c    LineComment
}, error) {
	repo := RepoSlug(a.workDir)
	endpoint := fmt.Sprintf("repos/%s/pulls/%d/comments", repo, n)
	output, err := a.run(ctx, "api", endpoint, "--paginate")
	if err != nil {
		return nil, err
	}

	var raw []reviewComment
	if err := json.Unmarshal(output, &raw); err != nil {
		return nil, wrap(KindTransient, fmt.Errorf("parse pr comments: %w", err))
	}

	result := make([]struct {
		path string
		c    LineComment
	}, 0, len(raw))
	for _, rc := range raw {
		side := New
		if rc.Side == "LEFT" {
			side = Old
		}
		result = append(result, struct {
			path string
			c    LineComment
		}{rc.Path, LineComment{Author: rc.User.Login, Body: rc.Body, Line: rc.Line, Side: side}})
	}
	return result, nil
}

// groupByPath keeps each comment's server-reported order within a file.
func groupByPath(items []struct {
	path string
	c    LineComment
}) map[string][]LineComment {
	out := map[string][]LineComment{}
	for _, it := range items {
		out[it.path] = append(out[it.path], it.c)
	}
	return out
}

// Approve approves PR n.
func (a *Adapter) Approve(ctx context.Context, n int) error {
	_, err := a.run(ctx, "pr", "review", fmt.Sprint(n), "--approve")
	return err
}

// RequestChanges requests changes on PR n with the given body.
func (a *Adapter) RequestChanges(ctx context.Context, n int, body string) error {
	_, err := a.run(ctx, "pr", "review", fmt.Sprint(n), "--request-changes", "--body", body)
	return err
}

// Comment posts a general comment on PR n.
func (a *Adapter) Comment(ctx context.Context, n int, body string) error {
	_, err := a.run(ctx, "pr", "comment", fmt.Sprint(n), "--body", body)
	return err
}

// AddLineComment posts an inline review comment anchored at (path, line,
// side) on the latest commit of PR n.
func (a *Adapter) AddLineComment(ctx context.Context, n int, path string, line int, side Side, body string) error {
	commitSHA, err := a.latestCommitSHA(ctx, n)
	if err != nil {
		return err
	}

	repo := RepoSlug(a.workDir)
	endpoint := fmt.Sprintf("repos/%s/pulls/%d/comments", repo, n)
	sideStr := "RIGHT"
	if side == Old {
		sideStr = "LEFT"
	}

	_, err = a.run(ctx, "api", endpoint,
		"-f", "body="+body,
		"-f", "path="+path,
		"-F", fmt.Sprintf("line=%d", line),
		"-f", "side="+sideStr,
		"-f", "commit_id="+commitSHA,
	)
	return err
}

// latestCommitSHA returns the head commit SHA of PR n, needed to anchor
// a new review comment.
func (a *Adapter) latestCommitSHA(ctx context.Context, n int) (string, error) {
	output, err := a.run(ctx, "pr", "view", fmt.Sprint(n), "--json", "headRefOid")
	if err != nil {
		return "", err
	}
	var v struct {
		HeadRefOid string `json:"headRefOid"`
	}
	if err := json.Unmarshal(output, &v); err != nil {
		return "", wrap(KindTransient, fmt.Errorf("parse pr head: %w", err))
	}
	return v.HeadRefOid, nil
}
