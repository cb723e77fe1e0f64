package sendgrid

import "fmt"

func otpHTML(otp string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif; background-color: #ffffff;">
	<div style="max-width: 600px; margin: 0 auto; padding: 20px;">

		<div style="background-color: #f9f9f9; border: 1px solid #e0e0e0; border-radius: 8px; padding: 30px; margin-bottom: 20px;">

			<h2 style="color: #1a4d2e; font-size: 20px; margin: 0 0 15px 0; text-align: center;">Verification Code</h2>

			<p style="color: #333333; font-size: 15px; line-height: 1.5; margin: 0 0 20px 0; text-align: center;">
				Here is your verification code for Hafez Quraan:
			</p>

			<div style="background-color: #ffffff; border: 2px solid #1a4d2e; border-radius: 6px; padding: 20px; text-align: center; margin: 20px 0;">
				<div style="font-size: 32px; font-weight: bold; color: #1a4d2e; letter-spacing: 5px; font-family: 'Courier New', monospace;">
					%s
				</div>
			</div>

			<p style="color: #666666; font-size: 13px; line-height: 1.5; margin: 15px 0 0 0; text-align: center;">
				This code expires in 5 minutes
			</p>

		</div>

		<div style="background-color: #fffbf0; border-left: 3px solid #d4af37; padding: 12px 15px; margin-bottom: 20px;">
			<p style="color: #666666; font-size: 13px; line-height: 1.5; margin: 0;">
				<strong>Security:</strong> Never share this code. We will never ask for it.
			</p>
		</div>

		<div style="text-align: center; padding-top: 20px; border-top: 1px solid #e0e0e0;">
			<p style="color: #999999; font-size: 12px; line-height: 1.5; margin: 0 0 5px 0;">
				Hafez Quraan - Quran Memorization App
			</p>
			<p style="color: #999999; font-size: 11px; line-height: 1.5; margin: 0;">
				<a href="https://hafezquraan.com" style="color: #1a4d2e; text-decoration: none;">hafezquraan.com</a>
			</p>
		</div>

	</div>
</body>
</html>
`, otp)
}
