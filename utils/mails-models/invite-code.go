package mailsmodels

import (
	"fmt"

	"ekoclub-backend/utils"
)

// InviteCode sends a registration invite code to a prospective member.
func InviteCode(email string, code string) {
	subject := "Your Eko Club International invite code"
	body := fmt.Sprintf(`
	<div style="background-color: #1B5E20; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%; min-height: 300px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">You are invited to join Eko Club International</h1></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">Use the code below on the registration page to create your member account:</td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">
						<p style="font-weight: bold; color: #1B5E20; text-align:center;">%s</p>
					</td>
				</tr>
			</tbody>
		</table>
	</div>
`, code)

	utils.SendMail(email, subject, body)
}
