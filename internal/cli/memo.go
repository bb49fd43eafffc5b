package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"memo/internal/memos/data"
	"memo/internal/memos/service"
)

func runAdd(args []string, svc service.MemoService, out, errOut io.Writer) int {
	if len(args) < 2 {
		fmt.Fprintln(errOut, "Error: title and content required")
		fmt.Fprintln(errOut, `Usage: memo add "title" content words...`)
		return 1
	}

	title := args[0]
	content := strings.Join(args[1:], " ")

	memo, err := svc.Create(title, content)
	if err != nil {
		fmt.Fprintf(errOut, "Error saving memo: %v\n", err)
		return 1
	}

	fmt.Fprintf(out, "Saved: %s\n", memo.ID)
	return 0
}

func runList(svc service.MemoService, out, errOut io.Writer) int {
	memos, err := svc.List()
	if err != nil {
		fmt.Fprintf(errOut, "Error loading memos: %v\n", err)
		return 1
	}

	if len(memos) == 0 {
		fmt.Fprintln(out, "No memos saved.")
		return 0
	}

	for i, m := range memos {
		fmt.Fprintf(out, "%d. %s (%s)\n", i+1, m.Title, m.Stamp)
	}

	fmt.Fprintf(out, "\n%d memo(s)\n", len(memos))
	return 0
}

func runRead(args []string, svc service.MemoService, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "Error: memo number or filename required")
		fmt.Fprintln(errOut, "Usage: memo read <n|filename>")
		return 1
	}

	memo, err := findMemo(svc, args[0])
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}

	content, err := svc.Get(memo.ID)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(out, "Title: %s\n", memo.Title)
	fmt.Fprintf(out, "Created: %s\n", memo.Stamp)
	fmt.Fprintln(out, "Content:")
	fmt.Fprintln(out, content)
	return 0
}

func runDelete(args []string, svc service.MemoService, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "Error: memo number or filename required")
		fmt.Fprintln(errOut, "Usage: memo delete <n|filename>")
		return 1
	}

	memo, err := findMemo(svc, args[0])
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}

	ok, err := svc.Delete(memo.ID)
	if err != nil {
		fmt.Fprintf(errOut, "Error deleting memo: %v\n", err)
		return 1
	}
	if !ok {
		fmt.Fprintf(errOut, "Error: %v: %s\n", data.ErrNotFound, memo.ID)
		return 1
	}

	fmt.Fprintf(out, "Deleted: %s\n", memo.ID)
	return 0
}

// findMemo resolves either a 1-based list number or an exact filename.
func findMemo(svc service.MemoService, ref string) (data.Memo, error) {
	memos, err := svc.List()
	if err != nil {
		return data.Memo{}, err
	}

	if memo, err := service.SelectByIndex(memos, ref); err == nil {
		return memo, nil
	}

	for _, m := range memos {
		if m.ID == ref {
			return m, nil
		}
	}

	if len(memos) == 0 {
		return data.Memo{}, errors.New("no memos saved")
	}
	return data.Memo{}, fmt.Errorf("no memo matches %q (use 1-%d or a filename)", ref, len(memos))
}
