package mailsmodels

import (
	"fmt"

	"ekoclub-backend/utils"
)

// WelcomeUser notifies a member that an administrator created an account
// for them, with the temporary password to use at first login.
func WelcomeUser(email string, userName string, tempPassword string) {
	subject := "Welcome to Eko Club International"
	body := fmt.Sprintf(`
	<div style="background-color: #1B5E20; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%; min-height: 300px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">Welcome to Eko Club International, %s</h1></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">An administrator created a member account for you. Sign in with your email address and the temporary password below:</td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">
						<p style="font-weight: bold; color: #1B5E20; text-align:center;">%s</p>
					</td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">You will be asked to choose a new password the first time you sign in.</td>
				</tr>
			</tbody>
		</table>
	</div>
`, userName, tempPassword)

	utils.SendMail(email, subject, body)
}
