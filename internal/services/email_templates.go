package services

// otpEmailHTML is the branded template for verification codes. Filled
// with (code, expiry minutes, year).
const otpEmailHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Email Verification</title>
<style>
  body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif; line-height: 1.6; color: #333; background-color: #f8f9fa; margin: 0; padding: 20px; }
  .container { max-width: 500px; margin: auto; background: #ffffff; border: 1px solid #e9ecef; border-radius: 8px; overflow: hidden; }
  .header { background-color: #1a7f4e; color: white; padding: 20px; text-align: center; }
  .header h1 { margin: 0; font-size: 24px; }
  .content { padding: 30px; text-align: center; }
  .code { font-size: 36px; font-weight: bold; letter-spacing: 8px; color: #1a7f4e; background-color: #f1f3f5; padding: 15px 20px; border-radius: 5px; display: inline-block; margin: 20px 0; }
  .footer { background-color: #f8f9fa; padding: 20px; text-align: center; font-size: 12px; color: #6c757d; }
  p { margin-bottom: 1em; }
</style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Email Verification</h1>
    </div>
    <div class="content">
      <p>Your OTP for email verification is:</p>
      <div class="code">%s</div>
      <p>This code will expire in %d minutes.</p>
      <p>If you didn't request this, please ignore this email.</p>
    </div>
    <div class="footer">
      © %d Shanti Yuwa Club. All rights reserved.
    </div>
  </div>
</body>
</html>`

// contactNotificationHTML notifies the club inbox of a new contact
// message. Filled with (name, email, subject, message, year).
const contactNotificationHTML = `<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif; line-height: 1.6; color: #333; background-color: #f8f9fa; margin: 0; padding: 20px; }
  .container { max-width: 600px; margin: auto; background: #ffffff; border: 1px solid #e9ecef; border-radius: 8px; padding: 20px; }
  .header { font-size: 20px; font-weight: bold; color: #1a7f4e; margin-bottom: 15px; }
  .footer { margin-top: 20px; font-size: 12px; color: #6c757d; text-align: center; }
  ul { list-style: none; padding: 0; }
  li { margin-bottom: 10px; }
  strong { color: #000; }
</style>
</head>
<body>
  <div class="container">
    <div class="header">New Contact Message</div>
    <ul>
      <li><strong>From:</strong> %s</li>
      <li><strong>Email:</strong> %s</li>
      <li><strong>Subject:</strong> %s</li>
    </ul>
    <p>%s</p>
    <div class="footer">
      © %d Shanti Yuwa Club. All rights reserved.
    </div>
  </div>
</body>
</html>`
