package email

const (
	magicLinkTemplateHTML string = `
	<!DOCTYPE html>
	<html>
	<head>
		<meta charset="utf-8">
		<title>Ihr Anmelde-Link</title>
	</head>
	<body>
		<div>
			<h1>Ihr Anmelde-Link</h1>
			<p>Hallo, hier ist Ihr persönlicher Anmelde-Link für DocBits.</p>
			<p>Klicken Sie auf die Schaltfläche unten, um sich anzumelden:</p>
			<p>
				<a href="{{.MagicLinkURL}}">Jetzt anmelden</a>
			</p>
			<p>Dieser Link ist {{.ExpiryMinutes}} Minuten lang gültig und kann nur einmal verwendet werden.</p>
			<p><strong>Sicherheitshinweis:</strong> Dieser Link ermöglicht den direkten Zugriff auf Ihr Konto. Teilen Sie ihn nicht mit anderen Personen.</p>
			<p>Falls der Button nicht funktioniert, können Sie auch den folgenden Link kopieren und in Ihren Browser einfügen:</p>
			<p>{{.MagicLinkURL}}</p>
			<p>Wenn Sie sich nicht bei DocBits anmelden wollten, können Sie diese E-Mail einfach ignorieren. Der Link wird automatisch ungültig.</p>
			<p>Mit freundlichen Grüßen,<br>Ihr DocBits Team</p>
		</div>
	</body>
	</html>`

	magicLinkTemplateText = `
		DocBits Bewirtungsbeleg - Ihr Anmelde-Link

		Hallo, hier ist Ihr persönlicher Anmelde-Link für DocBits.

		Melden Sie sich über diesen Link an:
		{{.MagicLinkURL}}

		Dieser Link ist {{.ExpiryMinutes}} Minuten lang gültig und kann nur einmal verwendet werden.

		Sicherheitshinweis: Dieser Link ermöglicht den direkten Zugriff auf Ihr Konto. Teilen Sie ihn nicht mit anderen Personen.

		Wenn Sie sich nicht bei DocBits anmelden wollten, können Sie diese E-Mail einfach ignorieren. Der Link wird automatisch ungültig.

		---
		Mit freundlichen Grüßen,
		Ihr DocBits Team
	`

	passwordResetTemplateHTML string = `
	<!DOCTYPE html>
	<html>
	<head>
		<meta charset="utf-8">
		<title>Passwort zurücksetzen</title>
	</head>
	<body>
		<div>
			<h1>Passwort zurücksetzen</h1>
			<p>Hallo, Sie haben angefordert, Ihr Passwort für DocBits zurückzusetzen.</p>
			<p>Klicken Sie auf die Schaltfläche unten, um ein neues Passwort zu wählen:</p>
			<p>
				<a href="{{.ResetURL}}">Neues Passwort festlegen</a>
			</p>
			<p>Dieser Link ist {{.ExpiryMinutes}} Minuten lang gültig und kann nur einmal verwendet werden.</p>
			<p>Falls der Button nicht funktioniert, können Sie auch den folgenden Link kopieren und in Ihren Browser einfügen:</p>
			<p>{{.ResetURL}}</p>
			<p>Wenn Sie kein neues Passwort angefordert haben, können Sie diese E-Mail einfach ignorieren. Ihr Passwort bleibt unverändert.</p>
			<p>Mit freundlichen Grüßen,<br>Ihr DocBits Team</p>
		</div>
	</body>
	</html>`

	passwordResetTemplateText = `
		DocBits Bewirtungsbeleg - Passwort zurücksetzen

		Hallo, Sie haben angefordert, Ihr Passwort für DocBits zurückzusetzen.

		Wählen Sie über diesen Link ein neues Passwort:
		{{.ResetURL}}

		Dieser Link ist {{.ExpiryMinutes}} Minuten lang gültig und kann nur einmal verwendet werden.

		Wenn Sie kein neues Passwort angefordert haben, können Sie diese E-Mail einfach ignorieren. Ihr Passwort bleibt unverändert.

		---
		Mit freundlichen Grüßen,
		Ihr DocBits Team
	`

	passwordChangedTemplateHTML string = `
	<!DOCTYPE html>
	<html>
	<head>
		<meta charset="utf-8">
		<title>Passwort geändert</title>
	</head>
	<body>
		<div>
			<h1>Passwort erfolgreich geändert</h1>
			<p>Hallo, das Passwort für Ihr DocBits-Konto wurde soeben geändert.</p>
			<p>Wenn Sie diese Änderung nicht vorgenommen haben, setzen Sie bitte umgehend Ihr Passwort zurück und kontaktieren Sie unseren Support.</p>
			<p>Mit freundlichen Grüßen,<br>Ihr DocBits Team</p>
		</div>
	</body>
	</html>`

	passwordChangedTemplateText = `
		DocBits Bewirtungsbeleg - Passwort erfolgreich geändert

		Hallo, das Passwort für Ihr DocBits-Konto wurde soeben geändert.

		Wenn Sie diese Änderung nicht vorgenommen haben, setzen Sie bitte umgehend Ihr Passwort zurück und kontaktieren Sie unseren Support.

		---
		Mit freundlichen Grüßen,
		Ihr DocBits Team
	`

	verificationTemplateHTML string = `
	<!DOCTYPE html>
	<html>
	<head>
		<meta charset="utf-8">
		<title>E-Mail-Adresse bestätigen</title>
	</head>
	<body>
		<div>
			<h1>Willkommen bei DocBits!</h1>
			<p>Hallo {{.FirstName}}, vielen Dank für Ihre Registrierung bei DocBits Bewirtungsbeleg.</p>
			<p>Bestätigen Sie Ihre E-Mail-Adresse und legen Sie Ihr Passwort fest, um Ihr Konto zu aktivieren:</p>
			<p>
				<a href="{{.VerifyURL}}">E-Mail-Adresse bestätigen</a>
			</p>
			<p>Dieser Link ist {{.ExpiryHours}} Stunden lang gültig und kann nur einmal verwendet werden.</p>
			<p>Falls der Button nicht funktioniert, können Sie auch den folgenden Link kopieren und in Ihren Browser einfügen:</p>
			<p>{{.VerifyURL}}</p>
			<p>Wenn Sie sich nicht bei DocBits registriert haben, können Sie diese E-Mail einfach ignorieren.</p>
			<p>Mit freundlichen Grüßen,<br>Ihr DocBits Team</p>
		</div>
	</body>
	</html>`

	verificationTemplateText = `
		DocBits Bewirtungsbeleg - E-Mail-Adresse bestätigen

		Hallo {{.FirstName}}, vielen Dank für Ihre Registrierung bei DocBits Bewirtungsbeleg.

		Bestätigen Sie Ihre E-Mail-Adresse und legen Sie Ihr Passwort fest:
		{{.VerifyURL}}

		Dieser Link ist {{.ExpiryHours}} Stunden lang gültig und kann nur einmal verwendet werden.

		Wenn Sie sich nicht bei DocBits registriert haben, können Sie diese E-Mail einfach ignorieren.

		---
		Mit freundlichen Grüßen,
		Ihr DocBits Team
	`
)
