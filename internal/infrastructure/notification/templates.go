package notification

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"quotedesk/internal/domain/entities"

	"github.com/osteele/liquid"
)

const (
	quoteSubject = "[다해드리오] 새로운 견적 요청"
	testSubject  = "[다해드리오] 테스트"
)

const quoteHTMLTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>새로운 견적 요청</title></head>
<body style="font-family: sans-serif; line-height: 1.6; color: #333;">
  <h1 style="font-size: 22px;">새로운 견적 요청</h1>
  <p>다해드리오 관리자님, 새로운 견적 요청이 접수되었습니다.</p>
  <p><strong>요청번호: {{ quote_id | escape }}</strong></p>
  <h2 style="font-size: 16px;">고객 정보</h2>
  <ul>
    <li>이름: {{ name | escape }}</li>
    <li>연락처: {{ phone | escape }}</li>
    <li>지역: {{ address | escape }}</li>
  </ul>
  <h2 style="font-size: 16px;">서비스 정보</h2>
  <ul>
    <li>서비스 유형: {{ service | escape }}</li>
    <li>청소 유형: {{ cleaning_type | escape }}</li>
  </ul>
{% if additional_info != "" %}
  <h2 style="font-size: 16px;">요청 내용</h2>
  <p>{{ additional_info | escape | newline_to_br }}</p>
{% endif %}
  <p>접수 시간: {{ submitted_at }}</p>
  <p>30분 내 연락 약속 - 빠른 대응이 필요합니다!</p>
  <p><a href="{{ admin_url }}">관리자 페이지에서 확인하기</a></p>
</body>
</html>
`

const quoteTextTemplate = `[다해드리오] 새로운 견적 요청이 도착했습니다

요청번호: {{ quote_id }}

=== 고객 정보 ===
이름: {{ name }}
연락처: {{ phone }}
지역: {{ address }}

=== 서비스 정보 ===
서비스 유형: {{ service }}
청소 유형: {{ cleaning_type }}

=== 요청 내용 ===
{% if additional_info != "" %}{{ additional_info }}{% else %}특별한 요청사항 없음{% endif %}

=== 접수 정보 ===
접수 시간: {{ submitted_at }}

30분 내 연락 약속 - 빠른 대응이 필요합니다!
관리자 페이지: {{ admin_url }}
`

const testTextTemplate = `다해드리오 이메일 발송 테스트입니다.
발송 시각: {{ sent_at }}
관리자 페이지: {{ admin_url }}
`

var kst = time.FixedZone("KST", 9*60*60)

// Rendered is one email body pair.
type Rendered struct {
	Subject string
	HTML    string
	Text    string
}

// TemplateRenderer renders notification bodies with liquid templates parsed once.
type TemplateRenderer struct {
	engine  *liquid.Engine
	siteURL string

	once      sync.Once
	parseErr  error
	quoteHTML *liquid.Template
	quoteText *liquid.Template
	testText  *liquid.Template
}

func NewTemplateRenderer(siteURL string) *TemplateRenderer {
	return &TemplateRenderer{
		engine:  liquid.NewEngine(),
		siteURL: strings.TrimRight(siteURL, "/"),
	}
}

// AdminURL is the admin list link included in every notification.
func (r *TemplateRenderer) AdminURL() string {
	return r.siteURL + "/admin/quotes"
}

func (r *TemplateRenderer) parse() error {
	r.once.Do(func() {
		parse := func(src string) *liquid.Template {
			if r.parseErr != nil {
				return nil
			}
			tpl, err := r.engine.ParseString(src)
			if err != nil {
				r.parseErr = fmt.Errorf("parse notification template: %w", err)
			}
			return tpl
		}
		r.quoteHTML = parse(quoteHTMLTemplate)
		r.quoteText = parse(quoteTextTemplate)
		r.testText = parse(testTextTemplate)
	})
	return r.parseErr
}

func (r *TemplateRenderer) RenderQuote(q entities.Quote) (Rendered, error) {
	if err := r.parse(); err != nil {
		return Rendered{}, err
	}

	address := q.Location.Address
	if address == "" {
		address = "주소 미입력"
	}
	bindings := map[string]any{
		"quote_id":        q.ID,
		"name":            q.Contact.Name,
		"phone":           q.Contact.Phone,
		"address":         strings.TrimSpace(address + " " + q.Location.DetailAddress),
		"service":         serviceText(q.ServiceType),
		"cleaning_type":   q.CleaningType,
		"additional_info": q.AdditionalInfo,
		"submitted_at":    FormatKST(q.SubmittedAt),
		"admin_url":       r.AdminURL(),
	}

	html, err := r.quoteHTML.RenderString(bindings)
	if err != nil {
		return Rendered{}, fmt.Errorf("render html: %w", err)
	}
	text, err := r.quoteText.RenderString(bindings)
	if err != nil {
		return Rendered{}, fmt.Errorf("render text: %w", err)
	}
	return Rendered{Subject: quoteSubject, HTML: html, Text: text}, nil
}

func (r *TemplateRenderer) RenderTest(now time.Time) (Rendered, error) {
	if err := r.parse(); err != nil {
		return Rendered{}, err
	}
	text, err := r.testText.RenderString(map[string]any{
		"sent_at":   FormatKST(now),
		"admin_url": r.AdminURL(),
	})
	if err != nil {
		return Rendered{}, fmt.Errorf("render test: %w", err)
	}
	return Rendered{Subject: testSubject, Text: text}, nil
}

func serviceText(t entities.ServiceType) string {
	if t == entities.ServiceTypeDirect {
		return "다해드리오 직접 청소"
	}
	return "검증된 업체 연결"
}

// FormatKST renders "2025. 03. 01. 오후 06:30:05" in Korean time.
func FormatKST(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	t = t.In(kst)
	meridiem := "오전"
	if t.Hour() >= 12 {
		meridiem = "오후"
	}
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d. %02d. %02d. %s %02d:%02d:%02d",
		t.Year(), int(t.Month()), t.Day(), meridiem, hour, t.Minute(), t.Second())
}
