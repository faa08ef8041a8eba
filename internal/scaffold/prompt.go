package scaffold

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	foundationerrors "github.com/justoffbyone/sitegen/internal/foundation/errors"
	"github.com/justoffbyone/sitegen/internal/urlpath"
)

// LineReader reads one answer after showing a prompt. io.EOF means the user
// closed the input.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// Prompter is a LineReader over a reader and a writer, e.g. stdin and stdout.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter returns a Prompter reading answers from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ReadLine prints prompt and returns the next line without its line ending.
// A final line without a newline is returned; io.EOF is only reported when
// nothing was read.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Options configure Run.
type Options struct {
	ContentDir string
	Author     string
	// SiteURL, when set, is used to print the post's preview address.
	SiteURL string
	Now     func() time.Time
}

// Result describes a created post.
type Result struct {
	Slug  string
	Path  string
	Draft bool
}

// Run asks for the post details on in, writes the post and prints next steps
// to out. Title and description are asked again until non-blank. A slug that
// already exists stops the run before any further question.
func Run(ctx context.Context, in LineReader, out io.Writer, opts Options) (Result, error) {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	fmt.Fprint(out, "📝 Create New Blog Post\n\n")

	title, err := askRequired(ctx, in, out, "Post title: ", "Title")
	if err != nil {
		return Result{}, err
	}

	slug := GenerateSlug(title)
	fmt.Fprintf(out, "Generated slug: %s\n\n", slug)
	if slug == "" {
		return Result{}, foundationerrors.ValidationError(fmt.Sprintf("Title %q does not produce a usable slug", title)).Build()
	}
	if Exists(opts.ContentDir, slug) {
		return Result{}, foundationerrors.ExistsError(fmt.Sprintf("A post with slug %q already exists", slug)).
			WithContext("slug", slug).
			Build()
	}

	description, err := askRequired(ctx, in, out, "Description: ", "Description")
	if err != nil {
		return Result{}, err
	}

	tagsInput, err := ask(ctx, in, "Tags (comma-separated, or press enter to skip): ")
	if err != nil {
		return Result{}, err
	}
	draftInput, err := ask(ctx, in, "Create as draft? (y/N): ")
	if err != nil {
		return Result{}, err
	}
	draft := strings.EqualFold(strings.TrimSpace(draftInput), "y") || strings.EqualFold(strings.TrimSpace(draftInput), "yes")

	path, err := Create(opts.ContentDir, slug, Post{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Date:        now(),
		Tags:        splitTags(tagsInput),
		Author:      opts.Author,
		Draft:       draft,
	})
	if err != nil {
		return Result{}, err
	}

	fmt.Fprintf(out, "\n✅ Created %s\n", path)
	if draft {
		fmt.Fprintln(out, "📌 Post created as draft")
	}
	fmt.Fprintln(out, "\n💡 Next steps:")
	fmt.Fprintf(out, "   1. Edit %s/%s\n", slug, IndexFile)
	fmt.Fprintln(out, `   2. Run "sitegen og" to create the OG image`)
	if opts.SiteURL != "" {
		fmt.Fprintf(out, "   3. Preview at %s%s\n", strings.TrimSuffix(opts.SiteURL, "/"), urlpath.EnsureTrailingSlash("/posts/"+slug))
	}

	return Result{Slug: slug, Path: path, Draft: draft}, nil
}

func ask(ctx context.Context, in LineReader, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	answer, err := in.ReadLine(prompt)
	if err != nil {
		return "", foundationerrors.WrapError(err, foundationerrors.CategoryValidation, "input closed before the post was complete").Build()
	}
	return answer, nil
}

func askRequired(ctx context.Context, in LineReader, out io.Writer, prompt, field string) (string, error) {
	for {
		answer, err := ask(ctx, in, prompt)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(answer) != "" {
			return answer, nil
		}
		fmt.Fprintf(out, "⚠️  %s is required!\n\n", field)
	}
}

func splitTags(input string) []string {
	var tags []string
	for _, tag := range strings.Split(input, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
