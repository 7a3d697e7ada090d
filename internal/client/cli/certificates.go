package cli

import "context"

func (c *Cli) runCertificates(ctx context.Context) error {
	certs, err := c.student.Certificates(ctx)
	if err != nil {
		c.io.Println(userMessage(err))
		return err
	}

	return renderTemplate(c.io, "certificates", certificatesTemplate, certs)
}
