// Package ui renders the user-visible notices of the lesson-plan CLI.
package ui

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/ukaji3/lessonplan-go/pkg/lessonplan"
)

// Notice titles.
const (
	TitleInfo    = "알림"
	TitleSuccess = "완료"
	TitleError   = "오류"
)

var (
	colorInfo    = lipgloss.Color("#83a598")
	colorSuccess = lipgloss.Color("#b8bb26")
	colorError   = lipgloss.Color("#fb4934")

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true)
)

// Notice is one message box shown to the user.
type Notice struct {
	Title string
	Body  string
	color lipgloss.Color
}

// Render draws the notice as a bordered box.
func (n Notice) Render() string {
	title := titleStyle.Foreground(n.color).Render(n.Title)
	return boxStyle.BorderForeground(n.color).Render(title + "\n" + n.Body)
}

// Print writes the rendered notice and a trailing newline to w.
func (n Notice) Print(w io.Writer) {
	fmt.Fprintln(w, n.Render())
}

// Success reports a written lesson plan.
func Success(path string) Notice {
	return Notice{
		Title: TitleSuccess,
		Body:  fmt.Sprintf("강의계획서가 생성되었습니다.\n파일 위치:\n%s", path),
		color: colorSuccess,
	}
}

// Failure reports a failed generation with the error message.
func Failure(err error) Notice {
	return Notice{
		Title: TitleError,
		Body:  fmt.Sprintf("엑셀 생성 중 오류가 발생했습니다.\n%s", describe(err)),
		color: colorError,
	}
}

// Capacity reports a refused add-operation, naming the limit.
func Capacity(err *lessonplan.CapacityError) Notice {
	var body string
	switch err.List {
	case "objectives":
		body = fmt.Sprintf("강의목표는 최대 %d개까지 입력할 수 있어요.", err.Limit)
	default:
		body = fmt.Sprintf("강의계획은 최대 %d개까지 추가할 수 있어요.", err.Limit)
	}
	return Notice{Title: TitleInfo, Body: body, color: colorInfo}
}

// NoticeFor picks the notice matching err.
func NoticeFor(err error) Notice {
	var capErr *lessonplan.CapacityError
	if errors.As(err, &capErr) {
		return Capacity(capErr)
	}
	return Failure(err)
}

func describe(err error) string {
	switch lessonplan.KindOf(err) {
	case lessonplan.KindResourceNotFound:
		return "템플릿 파일을 찾을 수 없습니다.\n" + err.Error()
	case lessonplan.KindWorkbookCorrupt:
		return "템플릿 파일이 올바른 엑셀 문서가 아닙니다.\n" + err.Error()
	case lessonplan.KindIO:
		return "파일을 저장하지 못했습니다.\n" + err.Error()
	case lessonplan.KindInvalidForm:
		return "입력값을 확인해 주세요.\n" + err.Error()
	default:
		return err.Error()
	}
}
