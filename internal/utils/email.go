package utils

import (
	"fmt"
	"log"

	"gadget_home_backend/internal/models"

	"github.com/wneessen/go-mail"
)

// Mailer envoie les e-mails transactionnels via SMTP.
// Host vide → envoi désactivé, les appels deviennent des no-op loggés.
type Mailer struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SendOrderConfirmation envoie la confirmation de commande au client.
func (m *Mailer) SendOrderConfirmation(order models.Order) error {
	if m.Host == "" {
		log.Println("⚠️ SMTP non configuré — e-mail de confirmation ignoré pour", order.Email)
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.From(m.From); err != nil {
		return err
	}
	if err := msg.To(order.Email); err != nil {
		return err
	}
	msg.Subject("Confirmation de votre commande Gadget Home")
	msg.SetBodyString(mail.TypeTextHTML, orderConfirmationHTML(order))

	client, err := mail.NewClient(m.Host,
		mail.WithPort(m.Port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(m.Username),
		mail.WithPassword(m.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail à", order.Email)
	return client.DialAndSend(msg)
}

func orderConfirmationHTML(order models.Order) string {
	itemsHTML := ""
	for _, item := range order.Items {
		price := fmt.Sprintf("%v", item.Price)
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
			</tr>`, item.Name, price)
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head><meta charset="UTF-8"><title>Confirmation de commande</title></head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Confirmation de votre commande</h2>
		<p>Bonjour %s,</p>
		<p>Votre paiement a bien été reçu (référence %s).</p>
		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f0f0f0;">
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Produit</th>
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Prix</th>
				</tr>
			</thead>
			<tbody>%s</tbody>
		</table>
		<p><strong>Total : %.2f %s</strong></p>
		<p>Merci pour votre commande !</p>
	</div>
</body>
</html>`, order.Shipping.Name, order.TransactionID, itemsHTML, order.TotalAmount, order.Currency)
}
