package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ChMubasharAli/getpiepay/internal/inquiryform"
	"github.com/ChMubasharAli/getpiepay/internal/version"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "getpiepay",
	Short: "GetPiePay CLI - submit website inquiries from the terminal",
	Long: `GetPiePay CLI drives the same inquiry pipeline as the website contact
form: field validation, reCAPTCHA proof and submission to the API server.

A reCAPTCHA token must be obtained from the widget (for example on the
website with the developer console open) and passed via --captcha-token;
tokens are single-use and expire after a couple of minutes.`,
}

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit an inquiry to the GetPiePay team",
	Example: `  getpiepay submit \
    --first-name Jane --last-name Doe --company "Acme Corp" \
    --email jane@acme.example --phone "+1 555 0100" \
    --purpose "Service and Solution Information" \
    --message "We'd like a demo." \
    --captcha-token <token>`,
	Run: func(cmd *cobra.Command, args []string) {
		server, _ := cmd.Flags().GetString("server")
		token, _ := cmd.Flags().GetString("captcha-token")

		form := inquiryform.New(
			inquiryform.NewClient(server),
			inquiryform.StaticToken(token),
		)

		purpose, _ := cmd.Flags().GetString("purpose")
		firstName, _ := cmd.Flags().GetString("first-name")
		lastName, _ := cmd.Flags().GetString("last-name")
		company, _ := cmd.Flags().GetString("company")
		title, _ := cmd.Flags().GetString("title")
		email, _ := cmd.Flags().GetString("email")
		phone, _ := cmd.Flags().GetString("phone")
		message, _ := cmd.Flags().GetString("message")

		form.SetValues(inquiryform.Values{
			InquiryPurpose: purpose,
			FirstName:      firstName,
			LastName:       lastName,
			Company:        company,
			Title:          title,
			Email:          email,
			Phone:          phone,
			Message:        message,
		})

		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Suffix = " Sending inquiry..."
		s.Start()

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		err := form.Submit(ctx)
		s.Stop()

		if err != nil {
			for _, field := range []string{"firstName", "lastName", "company", "email", "phone"} {
				if msg := form.FieldError(field); msg != "" {
					fmt.Printf("  %s: %s\n", field, msg)
				}
			}
			if msg := form.CaptchaError(); msg != "" {
				fmt.Printf("  reCAPTCHA: %s\n", msg)
			}
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		if form.State() != inquiryform.StateSucceeded {
			if msg := form.CaptchaError(); msg != "" {
				fmt.Printf("  reCAPTCHA: %s\n", msg)
			}
			fmt.Printf("Submission failed: %s\n", form.SummaryError())
			os.Exit(1)
		}

		fmt.Println(form.SuccessMessage())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.GetBuildInfo().String())
	},
}

func init() {
	submitCmd.Flags().String("server", "https://getpiepay.com", "API server base URL")
	submitCmd.Flags().String("purpose", inquiryform.DefaultPurpose, "Inquiry purpose")
	submitCmd.Flags().String("first-name", "", "First name (required)")
	submitCmd.Flags().String("last-name", "", "Last name (required)")
	submitCmd.Flags().String("company", "", "Company (required)")
	submitCmd.Flags().String("title", "", "Job title")
	submitCmd.Flags().String("email", "", "Email address (required)")
	submitCmd.Flags().String("phone", "", "Phone number (required)")
	submitCmd.Flags().String("message", "", "Free-text message")
	submitCmd.Flags().String("captcha-token", "", "reCAPTCHA token issued by the widget (required)")

	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
