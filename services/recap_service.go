package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	config "github.com/seifeddine26/peer_learn/configs"
	"github.com/seifeddine26/peer_learn/database"
	"github.com/seifeddine26/peer_learn/models"
)

// GenerateBookingRecap renders a printable confirmation for a freshly
// committed session, uploads it and stores the URL on the record. Runs
// in a goroutine after commit; failures only log, the booking itself
// already stands.
func GenerateBookingRecap(session models.BookedSession) {
	htmlData, err := generateRecapHTML(session)
	if err != nil {
		log.Printf("🔥 Failed to generate recap HTML: %v", err)
		return
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate recap PDF: %v", err)
		return
	}

	uploadURL, err := uploadToCloudinary(pdfBytes, session.ID)
	if err != nil {
		log.Printf("🔥 Failed to upload recap to Cloudinary: %v", err)
		return
	}

	if err := database.DB.Model(&models.BookedSession{}).
		Where("id = ?", session.ID).
		Update("recap_url", uploadURL).Error; err != nil {
		log.Printf("🔥 Failed to store recap URL for session %s: %v", session.ID, err)
	} else {
		log.Printf("✅ Generated booking recap for session %s.", session.ID)
	}
}

func generateRecapHTML(session models.BookedSession) (string, error) {
	tmpl, err := template.ParseFiles("templates/confirmation.html")
	if err != nil {
		return "", err
	}

	data := struct {
		TeacherName string
		Subject     string
		Date        string
		Time        string
		SessionType string
		Location    string
		Partners    string
		BookedOn    string
	}{
		TeacherName: session.TeacherName,
		Subject:     session.Subject,
		Date:        session.Date,
		Time:        session.Time,
		SessionType: string(session.SessionType),
		Location:    string(session.LocationType),
		Partners:    strings.Join(session.Partners, ", "),
		BookedOn:    time.Now().Format("January 2, 2006"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadToCloudinary(fileBytes []byte, sessionID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("recaps/%s_%s", sessionID, uuid.New().String()),
		Folder:       "peer_learn_recaps",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
