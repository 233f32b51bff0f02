package notify

import (
	"context"
	"crypto/tls"
	"errors"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/limbo/checkin/pkg/entity"
)

const smtpTimeout = 10 * time.Second

type SMTPServer struct {
	Host string
	Port int
}

func (s SMTPServer) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// ImplicitTLS reports whether the connection is TLS from the first byte.
// Any other port is upgraded with STARTTLS.
func (s SMTPServer) ImplicitTLS() bool {
	return s.Port == 465
}

var knownSMTPServers = map[string]SMTPServer{
	"qq.com":      {Host: "smtp.qq.com", Port: 587},
	"163.com":     {Host: "smtp.163.com", Port: 465},
	"126.com":     {Host: "smtp.126.com", Port: 465},
	"gmail.com":   {Host: "smtp.gmail.com", Port: 587},
	"outlook.com": {Host: "smtp.office365.com", Port: 587},
}

// InferSMTPServer picks the submission server of the sender's mail provider,
// smtp.qq.com:587 for unknown domains.
func InferSMTPServer(sender string) SMTPServer {
	domain := strings.ToLower(sender[strings.LastIndex(sender, "@")+1:])
	if srv, ok := knownSMTPServers[domain]; ok {
		return srv
	}
	return knownSMTPServers["qq.com"]
}

type EmailConfig struct {
	From     string
	FromName string
	// Password is the mailbox authorization code
	Password string
	// Host and Port are inferred from From when Host is empty
	Host string
	Port int
}

type EmailNotifier struct {
	from     string
	fromName string
	password string
	server   SMTPServer
	dial     func(ctx context.Context, network, addr string) (net.Conn, error)
}

func NewEmailNotifier(cfg EmailConfig) (*EmailNotifier, error) {
	if cfg.From == "" || !strings.Contains(cfg.From, "@") {
		return nil, errors.New("creating email notifier error: invalid sender address")
	}
	server := SMTPServer{Host: cfg.Host, Port: cfg.Port}
	if server.Host == "" {
		server = InferSMTPServer(cfg.From)
	} else if server.Port == 0 {
		server.Port = 587
	}
	dialer := &net.Dialer{Timeout: smtpTimeout}
	return &EmailNotifier{
		from:     cfg.From,
		fromName: cfg.FromName,
		password: cfg.Password,
		server:   server,
		dial:     dialer.DialContext,
	}, nil
}

func (n *EmailNotifier) Channel() entity.ContactKind {
	return entity.ContactEmail
}

func (n *EmailNotifier) Server() SMTPServer {
	return n.server
}

func (n *EmailNotifier) Send(ctx context.Context, contact entity.Contact, msg Message) error {
	if err := checkContact(n, contact); err != nil {
		return err
	}
	conn, err := n.connect(ctx)
	if err != nil {
		return errors.New("smtp connect error: " + err.Error())
	}
	c, err := smtp.NewClient(conn, n.server.Host)
	if err != nil {
		conn.Close()
		return errors.New("smtp handshake error: " + err.Error())
	}
	defer c.Close()

	if !n.server.ImplicitTLS() {
		if err = c.StartTLS(&tls.Config{ServerName: n.server.Host}); err != nil {
			return errors.New("smtp starttls error: " + err.Error())
		}
	}
	if n.password != "" {
		if err = c.Auth(smtp.PlainAuth("", n.from, n.password, n.server.Host)); err != nil {
			return errors.New("smtp auth error: " + err.Error())
		}
	}
	if err = c.Mail(n.from); err != nil {
		return errors.New("smtp sender error: " + err.Error())
	}
	if err = c.Rcpt(contact.Address); err != nil {
		return errors.New("smtp recipient error: " + err.Error())
	}
	wc, err := c.Data()
	if err != nil {
		return errors.New("smtp data error: " + err.Error())
	}
	if _, err = wc.Write(n.compose(contact.Address, msg)); err != nil {
		wc.Close()
		return errors.New("smtp write error: " + err.Error())
	}
	if err = wc.Close(); err != nil {
		return errors.New("smtp data error: " + err.Error())
	}
	return c.Quit()
}

func (n *EmailNotifier) connect(ctx context.Context) (net.Conn, error) {
	ctx, cancel := context.WithTimeout(ctx, smtpTimeout)
	defer cancel()
	conn, err := n.dial(ctx, "tcp", n.server.Addr())
	if err != nil {
		return nil, err
	}
	deadline, _ := ctx.Deadline()
	// the whole exchange has to fit into one more timeout window
	_ = conn.SetDeadline(deadline.Add(smtpTimeout))
	if n.server.ImplicitTLS() {
		tlsConn := tls.Client(conn, &tls.Config{ServerName: n.server.Host})
		if err = tlsConn.HandshakeContext(ctx); err != nil {
			conn.Close()
			return nil, err
		}
		return tlsConn, nil
	}
	return conn, nil
}

func (n *EmailNotifier) compose(to string, msg Message) []byte {
	from := n.from
	if n.fromName != "" {
		from = mime.BEncoding.Encode("UTF-8", n.fromName) + " <" + n.from + ">"
	}
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + mime.BEncoding.Encode("UTF-8", msg.Subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(msg.Body, "\n", "\r\n"))
	return []byte(b.String())
}
