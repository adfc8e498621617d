package mailer

import "fmt"

const (
	welcomeSubject        = "Welcome to the Basketballers newsletter"
	goodbyeSubject        = "You have been unsubscribed"
	accountWelcomeSubject = "Welcome to Basketballers"
)

func welcomeBody(siteURL, email string) string {
	return fmt.Sprintf(`Hi,

Thanks for subscribing to the Basketballers newsletter!

You'll now get the latest basketball news, game recaps and community
stories straight to your inbox. Manage your preferences any time:

%s/newsletter/preferences?email=%s

If you didn't subscribe, you can unsubscribe with one click:

%s/newsletter/unsubscribe?email=%s

See you on the court,
The Basketballers team
`, siteURL, email, siteURL, email)
}

func goodbyeBody(siteURL, email string) string {
	return fmt.Sprintf(`Hi,

You have been unsubscribed from the Basketballers newsletter and won't
receive any more emails from us.

Changed your mind? Resubscribe here:

%s/newsletter?email=%s

The Basketballers team
`, siteURL, email)
}

func accountWelcomeBody(siteURL, username string) string {
	return fmt.Sprintf(`Hi %s,

Welcome to Basketballers! Your account is ready.

Jump in, read the latest stories and join the conversation:

%s

The Basketballers team
`, username, siteURL)
}
