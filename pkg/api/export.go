/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/makr-code/VCC-Clara-sub001/pkg/models"
)

const partSuffix = ".part"

// ProgressFunc receives bytes written so far and the total size, or -1 when
// the server does not disclose one.
type ProgressFunc func(done, total int64)

// RequestExport asks the backend to prepare an export of one resource.
func (c *Client) RequestExport(ctx context.Context, resource, id, format string) (*models.ExportTicket, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errEmptyID
	}

	if strings.TrimSpace(format) == "" {
		return nil, &ValidationError{Field: "format"}
	}

	op := "export " + resource

	data, err := c.send(ctx, op, http.MethodPost, c.endpoint(nil, resource, id, "export"),
		map[string]string{"format": format}, c.timeout)
	if err != nil {
		return nil, err
	}

	ticket := &models.ExportTicket{}
	if err := c.decode(op, data, ticket); err != nil {
		return nil, err
	}

	if ticket.DownloadURL == "" {
		return nil, &APIError{Service: c.name, Op: op, Message: errNoDownloadURL.Error()}
	}

	if ticket.Format == "" {
		ticket.Format = format
	}

	return ticket, nil
}

// Download streams the export artifact to dst through a sibling ".part"
// file that replaces dst only on success. On failure dst is left untouched
// and the partial file is removed.
func (c *Client) Download(ctx context.Context, ticket *models.ExportTicket, dst string, progress ProgressFunc) (err error) {
	const op = "download export"

	target, err := c.resolve(ticket.DownloadURL)
	if err != nil {
		return c.transport(op, 0, err)
	}

	ctx, span := c.startSpan(ctx, op, http.MethodGet, target)
	defer func() { endSpan(span, err) }()

	ctx, cancel := context.WithTimeout(ctx, c.downloadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return c.transport(op, 0, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.transport(op, 0, err)
	}
	defer resp.Body.Close()

	if StatusCodeRangeOf(resp) != Status2xx {
		return c.rejection(op, resp)
	}

	total := resp.ContentLength
	if total < 0 && ticket.SizeBytes > 0 {
		total = ticket.SizeBytes
	}

	part := dst + partSuffix

	f, err := os.Create(part)
	if err != nil {
		return fmt.Errorf("create %s: %w", part, err)
	}

	defer func() {
		closeErr := f.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("close %s: %w", part, closeErr)
		}

		if err == nil {
			if renameErr := os.Rename(part, dst); renameErr != nil {
				err = fmt.Errorf("rename %s: %w", part, renameErr)
			}
		}

		if err != nil {
			_ = os.Remove(part)
		}
	}()

	w := &progressWriter{w: f, total: total, report: progress}
	if progress != nil {
		progress(0, total)
	}

	if _, copyErr := io.Copy(w, resp.Body); copyErr != nil {
		if w.writeErr != nil {
			return fmt.Errorf("write %s: %w", part, copyErr)
		}

		return c.transport(op, resp.StatusCode, copyErr)
	}

	if total > 0 && w.done != total {
		return c.transport(op, resp.StatusCode, fmt.Errorf("%w: got %d of %d bytes", io.ErrUnexpectedEOF, w.done, total))
	}

	c.logger.Info().Str("service", c.name).Str("path", dst).Int64("bytes", w.done).Msg("export downloaded")

	return nil
}

// Export runs the two-phase export: request, then download to dst.
func (c *Client) Export(ctx context.Context, resource, id, format, dst string, progress ProgressFunc) (*models.ExportTicket, error) {
	if strings.TrimSpace(dst) == "" {
		return nil, &ValidationError{Field: "destination"}
	}

	ticket, err := c.RequestExport(ctx, resource, id, format)
	if err != nil {
		return nil, err
	}

	if err := c.Download(ctx, ticket, dst, progress); err != nil {
		return ticket, err
	}

	return ticket, nil
}

type progressWriter struct {
	w        io.Writer
	done     int64
	total    int64
	report   ProgressFunc
	writeErr error
}

func (p *progressWriter) Write(b []byte) (int, error) {
	n, err := p.w.Write(b)
	p.done += int64(n)

	if err != nil {
		p.writeErr = err
		return n, err
	}

	if p.report != nil {
		p.report(p.done, p.total)
	}

	return n, nil
}
