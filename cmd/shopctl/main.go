// Command shopctl is a terminal front end for the storefront backend. It keeps
// the cart, wishlist and session in a local state file, so it behaves like the
// web client across invocations.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"sanjeevika-shop/client/api"
	"sanjeevika-shop/client/cart"
	"sanjeevika-shop/client/notify"
	"sanjeevika-shop/client/session"
	"sanjeevika-shop/client/storage"
	"sanjeevika-shop/client/wishlist"
	"sanjeevika-shop/models"
)

var (
	serverURL string
	statePath string

	store     storage.Store
	apiClient *api.Client
	sessions  *session.Store
	carts     *cart.Store
	wishlists *wishlist.Store
)

func main() {
	root := &cobra.Command{
		Use:   "shopctl",
		Short: "Sanjeevika storefront from the terminal",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initStores()
		},
	}

	defaultState := ".shopctl.json"
	if home, err := os.UserHomeDir(); err == nil {
		defaultState = filepath.Join(home, ".shopctl.json")
	}
	root.PersistentFlags().StringVar(&serverURL, "server", envOr("SHOPCTL_SERVER", "http://localhost:8080"), "backend base URL")
	root.PersistentFlags().StringVar(&statePath, "state", defaultState, "path of the local state file")

	root.AddCommand(
		loginCmd(),
		registerCmd(),
		logoutCmd(),
		whoamiCmd(),
		productsCmd(),
		cartCmd(),
		wishlistCmd(),
		checkoutCmd(),
		newsletterCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func initStores() {
	store = storage.NewFileStore(statePath)

	// The token rides along on every request straight from storage, so a
	// login in one invocation authenticates the next.
	apiClient = api.NewClient(serverURL, func() string {
		return storage.GetOr(store, storage.TokenKey, "")
	})

	events := notify.NewChannel()
	events.Subscribe(func(e notify.Event) {
		fmt.Println(e.Message())
	})

	sessions = session.New(store, apiClient)
	carts = cart.New(store, events)
	wishlists = wishlist.New(store)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func loginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session locally",
		Run: func(cmd *cobra.Command, args []string) {
			result := sessions.Login(context.Background(), email, password)
			fmt.Println(result.Message)
			if !result.Success {
				os.Exit(1)
			}
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func registerCmd() *cobra.Command {
	var req models.RegisterRequest
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Run: func(cmd *cobra.Command, args []string) {
			result := sessions.Register(context.Background(), req)
			fmt.Println(result.Message)
			if !result.Success {
				os.Exit(1)
			}
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "full name")
	cmd.Flags().StringVar(&req.Email, "email", "", "account email")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password")
	cmd.Flags().StringVar(&req.Mobile, "mobile", "", "mobile number")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	cmd.MarkFlagRequired("mobile")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the stored session",
		Run: func(cmd *cobra.Command, args []string) {
			sessions.Logout(context.Background())
			fmt.Println("Logged out")
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Run: func(cmd *cobra.Command, args []string) {
			user := sessions.User()
			if user == nil {
				fmt.Println("Not signed in")
				return
			}
			fmt.Printf("%s <%s>\n", user.Name, user.Email)
		},
	}
}

func productsCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List the catalog",
		Run: func(cmd *cobra.Command, args []string) {
			var (
				products []models.Product
				err      error
			)
			if category != "" {
				products, err = apiClient.ProductsByCategory(context.Background(), category)
			} else {
				products, err = apiClient.Products(context.Background())
			}
			if err != nil {
				log.Fatalln("failed to fetch products:", err)
			}
			for _, p := range products {
				fmt.Printf("%-12s %-40s Rs.%.2f\n", p.ID, p.Title, p.Price)
			}
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "filter by category")
	return cmd
}

func cartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the local cart",
	}

	var qty int
	add := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			product, err := apiClient.ProductByID(context.Background(), args[0])
			if err != nil {
				log.Fatalln(err)
			}
			carts.Add(*product, qty)
		},
	}
	add.Flags().IntVar(&qty, "qty", 1, "quantity to add")

	remove := &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product from the cart",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			carts.Remove(args[0])
		},
	}

	update := &cobra.Command{
		Use:   "update <product-id> <quantity>",
		Short: "Set a line's quantity; zero removes it",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				log.Fatalln("quantity must be a number:", err)
			}
			carts.UpdateQuantity(args[0], quantity)
		},
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Run: func(cmd *cobra.Command, args []string) {
			carts.Clear()
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the cart contents and totals",
		Run: func(cmd *cobra.Command, args []string) {
			items := carts.Items()
			if len(items) == 0 {
				fmt.Println("Cart is empty")
				return
			}
			for _, line := range items {
				fmt.Printf("%-12s %-40s x%-3d Rs.%.2f\n", line.ProductID, line.Title, line.Quantity, line.Price*float64(line.Quantity))
			}
			fmt.Printf("%d items, total Rs.%.2f\n", carts.ItemCount(), carts.TotalPrice())
		},
	}

	cmd.AddCommand(add, remove, update, clear, show)
	return cmd
}

func wishlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Manage the wishlist",
	}

	toggle := &cobra.Command{
		Use:   "toggle <product-id>",
		Short: "Add or remove a product on the wishlist",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			product, err := apiClient.ProductByID(context.Background(), args[0])
			if err != nil {
				log.Fatalln(err)
			}
			if wishlists.Toggle(*product) {
				fmt.Println("Added to wishlist")
			} else {
				fmt.Println("Removed from wishlist")
			}
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the wishlist",
		Run: func(cmd *cobra.Command, args []string) {
			items := wishlists.Items()
			if len(items) == 0 {
				fmt.Println("Wishlist is empty")
				return
			}
			for _, p := range items {
				fmt.Printf("%-12s %-40s Rs.%.2f\n", p.ID, p.Title, p.Price)
			}
		},
	}

	cmd.AddCommand(toggle, show)
	return cmd
}

func checkoutCmd() *cobra.Command {
	var (
		address       models.Address
		paymentMethod string
		taxType       string
		notes         string
	)
	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place an order for the current cart",
		Run: func(cmd *cobra.Command, args []string) {
			if !sessions.IsAuthenticated() {
				log.Fatalln("sign in before checking out")
			}
			items := carts.Items()
			if len(items) == 0 {
				log.Fatalln("cart is empty")
			}

			totals := models.ComputeCheckoutTotals(items, taxType)
			fmt.Printf("Subtotal Rs.%.2f, tax Rs.%.2f, shipping Rs.%.2f, discount Rs.%.2f\n",
				totals.Subtotal, totals.Tax, totals.ShippingCost, totals.Discount)

			order, err := apiClient.CreateOrder(context.Background(), models.CheckoutRequest{
				Items:         items,
				Address:       address,
				PaymentMethod: paymentMethod,
				TaxType:       taxType,
				Notes:         notes,
			})
			if err != nil {
				log.Fatalln("checkout failed:", err)
			}

			carts.Clear()
			fmt.Printf("Order %s placed, total Rs.%.2f\n", order.OrderNumber, order.TotalAmount)
		},
	}
	cmd.Flags().StringVar(&address.Line1, "line1", "", "address line 1")
	cmd.Flags().StringVar(&address.Line2, "line2", "", "address line 2")
	cmd.Flags().StringVar(&address.Landmark, "landmark", "", "landmark")
	cmd.Flags().StringVar(&address.City, "city", "", "city")
	cmd.Flags().StringVar(&address.State, "state", "", "state")
	cmd.Flags().StringVar(&address.PinCode, "pincode", "", "pin code")
	cmd.Flags().StringVar(&address.Country, "country", "India", "country")
	cmd.Flags().StringVar(&paymentMethod, "payment", "cod", "payment method")
	cmd.Flags().StringVar(&taxType, "tax-type", "", "product tax label")
	cmd.Flags().StringVar(&notes, "notes", "", "order notes")
	cmd.MarkFlagRequired("line1")
	cmd.MarkFlagRequired("city")
	cmd.MarkFlagRequired("state")
	cmd.MarkFlagRequired("pincode")
	return cmd
}

func newsletterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "newsletter <email>",
		Short: "Subscribe an email to the newsletter",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.SubscribeNewsletter(context.Background(), args[0]); err != nil {
				log.Fatalln(err)
			}
			fmt.Println("Subscribed!")
		},
	}
}
