package gmail

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"net/mail"
	"net/textproto"
	"regexp"
	"strings"
)

// Message is the input of Compose. From is the delegated user address;
// threading headers are set only when the message continues an existing
// conversation.
type Message struct {
	To         string
	ToName     string
	From       string
	FromName   string
	Subject    string
	HTMLBody   string
	References string
	InReplyTo  string
}

var tagRe = regexp.MustCompile(`<[^>]+>`)

var entityReplacer = strings.NewReplacer("&nbsp;", " ", "&amp;", "&")

// stripHTML derives the text/plain alternative from the HTML body.
func stripHTML(html string) string {
	return entityReplacer.Replace(tagRe.ReplaceAllString(html, ""))
}

func formatAddr(name, address string) string {
	if name == "" {
		return address
	}
	return (&mail.Address{Name: name, Address: address}).String()
}

// Compose builds a multipart/alternative RFC 5322 message and returns it
// base64url-encoded (padding kept), matching the Gmail raw-message input.
// Address syntax is not validated here; that is the caller's job.
func Compose(m Message) string {
	var buf bytes.Buffer
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	pw, _ := mw.CreatePart(textproto.MIMEHeader{
		"Content-Type": {`text/plain; charset="utf-8"`},
	})
	fmt.Fprint(pw, stripHTML(m.HTMLBody))

	pw, _ = mw.CreatePart(textproto.MIMEHeader{
		"Content-Type": {`text/html; charset="utf-8"`},
	})
	fmt.Fprint(pw, m.HTMLBody)
	mw.Close()

	fmt.Fprintf(&buf, "To: %s\r\n", formatAddr(m.ToName, m.To))
	fmt.Fprintf(&buf, "From: %s\r\n", formatAddr(m.FromName, m.From))
	fmt.Fprintf(&buf, "Subject: %s\r\n", m.Subject)
	if m.References != "" {
		fmt.Fprintf(&buf, "References: %s\r\n", m.References)
	}
	if m.InReplyTo != "" {
		fmt.Fprintf(&buf, "In-Reply-To: %s\r\n", m.InReplyTo)
	}
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%q\r\n", mw.Boundary())
	fmt.Fprintf(&buf, "\r\n")
	buf.Write(body.Bytes())

	return base64.URLEncoding.EncodeToString(buf.Bytes())
}
