package integrity

import (
	"context"
	"fmt"
	"sort"

	cartdomain "github.com/nvasilev/storefront/internal/cart/domain"
	catalogdomain "github.com/nvasilev/storefront/internal/catalog/domain"
	apperr "github.com/nvasilev/storefront/internal/domain"
	orderdomain "github.com/nvasilev/storefront/internal/order/domain"
	reviewdomain "github.com/nvasilev/storefront/internal/review/domain"
	userdomain "github.com/nvasilev/storefront/internal/user/domain"
	wishlistdomain "github.com/nvasilev/storefront/internal/wishlist/domain"
)

// memStore is the shared backing state for the in-memory repository fakes.
// Every fake reads and writes the same maps, so a cascade over a memRunner
// observes its own earlier stages just like repositories bound to one
// transaction would.
type memStore struct {
	lastID uint

	users         map[uint]userdomain.User
	admins        map[uint]userdomain.Admin
	addresses     map[uint]userdomain.Address
	products      map[uint]catalogdomain.Product
	brands        map[uint]catalogdomain.Brand
	categories    map[uint]catalogdomain.Category
	carts         map[uint]cartdomain.Cart
	cartItems     map[uint]cartdomain.CartItem
	orders        map[uint]orderdomain.Order
	orderItems    map[uint]orderdomain.OrderItem
	wishLists     map[uint]wishlistdomain.WishList
	wishListItems map[uint]wishlistdomain.WishListItem
	reviews       map[uint]reviewdomain.Review
}

func newMemStore() *memStore {
	return &memStore{
		users:         make(map[uint]userdomain.User),
		admins:        make(map[uint]userdomain.Admin),
		addresses:     make(map[uint]userdomain.Address),
		products:      make(map[uint]catalogdomain.Product),
		brands:        make(map[uint]catalogdomain.Brand),
		categories:    make(map[uint]catalogdomain.Category),
		carts:         make(map[uint]cartdomain.Cart),
		cartItems:     make(map[uint]cartdomain.CartItem),
		orders:        make(map[uint]orderdomain.Order),
		orderItems:    make(map[uint]orderdomain.OrderItem),
		wishLists:     make(map[uint]wishlistdomain.WishList),
		wishListItems: make(map[uint]wishlistdomain.WishListItem),
		reviews:       make(map[uint]reviewdomain.Review),
	}
}

func (s *memStore) nextID() uint {
	s.lastID++
	return s.lastID
}

// repos binds a full repository set to the store.
func (s *memStore) repos() *Repos {
	return &Repos{
		Users:         &memUsers{s},
		Admins:        &memAdmins{s},
		Addresses:     &memAddresses{s},
		Products:      &memProducts{s},
		Brands:        &memBrands{s},
		Categories:    &memCategories{s},
		Carts:         &memCarts{s},
		CartItems:     &memCartItems{s},
		Orders:        &memOrders{s},
		OrderItems:    &memOrderItems{s},
		WishLists:     &memWishLists{s},
		WishListItems: &memWishListItems{s},
		Reviews:       &memReviews{s},
	}
}

// memRunner hands fn the same repository set on every call. Rollback is
// not simulated; failure tests assert on the returned error instead.
type memRunner struct {
	repos *Repos
}

func (m *memRunner) RunInTransaction(_ context.Context, fn func(r *Repos) error) error {
	return fn(m.repos)
}

func notFound(kind string, id uint) error {
	return fmt.Errorf("%s %d: %w", kind, id, apperr.ErrNotFound)
}

// --- users ---

type memUsers struct{ s *memStore }

func (r *memUsers) Create(u *userdomain.User) error {
	if u.ID == 0 {
		u.ID = r.s.nextID()
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r *memUsers) FindByID(id uint) (*userdomain.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, notFound("user", id)
	}
	return &u, nil
}

func (r *memUsers) FindByEmail(email string) (*userdomain.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("user: %w", apperr.ErrNotFound)
}

func (r *memUsers) FindAll(limit, offset int) ([]userdomain.User, error) {
	out := make([]userdomain.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return window(out, limit, offset), nil
}

func (r *memUsers) Update(u *userdomain.User) error {
	if _, ok := r.s.users[u.ID]; !ok {
		return notFound("user", u.ID)
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r *memUsers) Delete(id uint) error {
	if _, ok := r.s.users[id]; !ok {
		return notFound("user", id)
	}
	delete(r.s.users, id)
	return nil
}

func (r *memUsers) DeleteAll() error {
	r.s.users = make(map[uint]userdomain.User)
	return nil
}

func (r *memUsers) Count() (int64, error) {
	return int64(len(r.s.users)), nil
}

// --- admins ---

type memAdmins struct{ s *memStore }

func (r *memAdmins) Create(a *userdomain.Admin) error {
	if a.ID == 0 {
		a.ID = r.s.nextID()
	}
	r.s.admins[a.ID] = *a
	return nil
}

func (r *memAdmins) FindByID(id uint) (*userdomain.Admin, error) {
	a, ok := r.s.admins[id]
	if !ok {
		return nil, notFound("admin", id)
	}
	return &a, nil
}

func (r *memAdmins) FindByEmail(email string) (*userdomain.Admin, error) {
	for _, a := range r.s.admins {
		if a.Email == email {
			cp := a
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("admin: %w", apperr.ErrNotFound)
}

func (r *memAdmins) FindAll(limit, offset int) ([]userdomain.Admin, error) {
	out := make([]userdomain.Admin, 0, len(r.s.admins))
	for _, a := range r.s.admins {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return window(out, limit, offset), nil
}

func (r *memAdmins) Update(a *userdomain.Admin) error {
	if _, ok := r.s.admins[a.ID]; !ok {
		return notFound("admin", a.ID)
	}
	r.s.admins[a.ID] = *a
	return nil
}

func (r *memAdmins) Delete(id uint) error {
	if _, ok := r.s.admins[id]; !ok {
		return notFound("admin", id)
	}
	delete(r.s.admins, id)
	return nil
}

func (r *memAdmins) DeleteAll() error {
	r.s.admins = make(map[uint]userdomain.Admin)
	return nil
}

// --- addresses ---

type memAddresses struct{ s *memStore }

func (r *memAddresses) Create(a *userdomain.Address) error {
	if a.ID == 0 {
		a.ID = r.s.nextID()
	}
	r.s.addresses[a.ID] = *a
	return nil
}

func (r *memAddresses) FindByID(id uint) (*userdomain.Address, error) {
	a, ok := r.s.addresses[id]
	if !ok {
		return nil, notFound("address", id)
	}
	return &a, nil
}

func (r *memAddresses) FindByUserID(userID uint) ([]userdomain.Address, error) {
	var out []userdomain.Address
	for _, a := range r.s.addresses {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memAddresses) Update(a *userdomain.Address) error {
	if _, ok := r.s.addresses[a.ID]; !ok {
		return notFound("address", a.ID)
	}
	r.s.addresses[a.ID] = *a
	return nil
}

func (r *memAddresses) Delete(id uint) error {
	if _, ok := r.s.addresses[id]; !ok {
		return notFound("address", id)
	}
	delete(r.s.addresses, id)
	return nil
}

func (r *memAddresses) DeleteByUserID(userID uint) error {
	for id, a := range r.s.addresses {
		if a.UserID == userID {
			delete(r.s.addresses, id)
		}
	}
	return nil
}

func (r *memAddresses) DeleteAll() error {
	r.s.addresses = make(map[uint]userdomain.Address)
	return nil
}

func (r *memAddresses) ClearDefaults(userID uint) error {
	for id, a := range r.s.addresses {
		if a.UserID == userID && a.Default {
			a.Default = false
			r.s.addresses[id] = a
		}
	}
	return nil
}

// --- products ---

type memProducts struct{ s *memStore }

func (r *memProducts) Create(p *catalogdomain.Product) error {
	if p.ID == 0 {
		p.ID = r.s.nextID()
	}
	r.s.products[p.ID] = *p
	return nil
}

func (r *memProducts) FindByID(id uint) (*catalogdomain.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, notFound("product", id)
	}
	return &p, nil
}

func (r *memProducts) FindAll(limit, offset int) ([]catalogdomain.Product, error) {
	out := make([]catalogdomain.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return window(out, limit, offset), nil
}

func (r *memProducts) FindByBrandID(brandID uint) ([]catalogdomain.Product, error) {
	var out []catalogdomain.Product
	for _, p := range r.s.products {
		if p.BrandID == brandID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memProducts) FindByCategoryID(categoryID uint) ([]catalogdomain.Product, error) {
	var out []catalogdomain.Product
	for _, p := range r.s.products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memProducts) Update(p *catalogdomain.Product) error {
	if _, ok := r.s.products[p.ID]; !ok {
		return notFound("product", p.ID)
	}
	r.s.products[p.ID] = *p
	return nil
}

func (r *memProducts) Delete(id uint) error {
	if _, ok := r.s.products[id]; !ok {
		return notFound("product", id)
	}
	delete(r.s.products, id)
	return nil
}

func (r *memProducts) DeleteAll() error {
	r.s.products = make(map[uint]catalogdomain.Product)
	return nil
}

func (r *memProducts) Count() (int64, error) {
	return int64(len(r.s.products)), nil
}

func (r *memProducts) AdjustStock(id uint, delta int) error {
	p, ok := r.s.products[id]
	if !ok {
		return notFound("product", id)
	}
	p.Stock += delta
	r.s.products[id] = p
	return nil
}

// --- brands ---

type memBrands struct{ s *memStore }

func (r *memBrands) Create(b *catalogdomain.Brand) error {
	if b.ID == 0 {
		b.ID = r.s.nextID()
	}
	r.s.brands[b.ID] = *b
	return nil
}

func (r *memBrands) FindByID(id uint) (*catalogdomain.Brand, error) {
	b, ok := r.s.brands[id]
	if !ok {
		return nil, notFound("brand", id)
	}
	return &b, nil
}

func (r *memBrands) FindAll() ([]catalogdomain.Brand, error) {
	out := make([]catalogdomain.Brand, 0, len(r.s.brands))
	for _, b := range r.s.brands {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memBrands) Update(b *catalogdomain.Brand) error {
	if _, ok := r.s.brands[b.ID]; !ok {
		return notFound("brand", b.ID)
	}
	r.s.brands[b.ID] = *b
	return nil
}

func (r *memBrands) Delete(id uint) error {
	if _, ok := r.s.brands[id]; !ok {
		return notFound("brand", id)
	}
	delete(r.s.brands, id)
	return nil
}

func (r *memBrands) DeleteAll() error {
	r.s.brands = make(map[uint]catalogdomain.Brand)
	return nil
}

// --- categories ---

type memCategories struct{ s *memStore }

func (r *memCategories) Create(c *catalogdomain.Category) error {
	if c.ID == 0 {
		c.ID = r.s.nextID()
	}
	r.s.categories[c.ID] = *c
	return nil
}

func (r *memCategories) FindByID(id uint) (*catalogdomain.Category, error) {
	c, ok := r.s.categories[id]
	if !ok {
		return nil, notFound("category", id)
	}
	return &c, nil
}

func (r *memCategories) FindAll() ([]catalogdomain.Category, error) {
	out := make([]catalogdomain.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memCategories) Update(c *catalogdomain.Category) error {
	if _, ok := r.s.categories[c.ID]; !ok {
		return notFound("category", c.ID)
	}
	r.s.categories[c.ID] = *c
	return nil
}

func (r *memCategories) Delete(id uint) error {
	if _, ok := r.s.categories[id]; !ok {
		return notFound("category", id)
	}
	delete(r.s.categories, id)
	return nil
}

func (r *memCategories) DeleteAll() error {
	r.s.categories = make(map[uint]catalogdomain.Category)
	return nil
}

// --- carts ---

type memCarts struct{ s *memStore }

func (r *memCarts) Create(c *cartdomain.Cart) error {
	if c.ID == 0 {
		c.ID = r.s.nextID()
	}
	r.s.carts[c.ID] = *c
	return nil
}

func (r *memCarts) FindByID(id uint) (*cartdomain.Cart, error) {
	c, ok := r.s.carts[id]
	if !ok {
		return nil, notFound("cart", id)
	}
	return &c, nil
}

func (r *memCarts) FindByUserID(userID uint) (*cartdomain.Cart, error) {
	for _, c := range r.s.carts {
		if c.UserID == userID {
			cp := c
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("cart for user %d: %w", userID, apperr.ErrNotFound)
}

func (r *memCarts) FindAll() ([]cartdomain.Cart, error) {
	out := make([]cartdomain.Cart, 0, len(r.s.carts))
	for _, c := range r.s.carts {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memCarts) Update(c *cartdomain.Cart) error {
	if _, ok := r.s.carts[c.ID]; !ok {
		return notFound("cart", c.ID)
	}
	r.s.carts[c.ID] = *c
	return nil
}

func (r *memCarts) Delete(id uint) error {
	if _, ok := r.s.carts[id]; !ok {
		return notFound("cart", id)
	}
	delete(r.s.carts, id)
	return nil
}

func (r *memCarts) DeleteAll() error {
	r.s.carts = make(map[uint]cartdomain.Cart)
	return nil
}

// --- cart items ---

type memCartItems struct{ s *memStore }

func (r *memCartItems) Create(item *cartdomain.CartItem) error {
	if item.ID == 0 {
		item.ID = r.s.nextID()
	}
	r.s.cartItems[item.ID] = *item
	return nil
}

func (r *memCartItems) FindByID(id uint) (*cartdomain.CartItem, error) {
	item, ok := r.s.cartItems[id]
	if !ok {
		return nil, notFound("cart item", id)
	}
	return &item, nil
}

func (r *memCartItems) FindByCartID(cartID uint) ([]cartdomain.CartItem, error) {
	var out []cartdomain.CartItem
	for _, item := range r.s.cartItems {
		if item.CartID == cartID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memCartItems) FindByProductID(productID uint) ([]cartdomain.CartItem, error) {
	var out []cartdomain.CartItem
	for _, item := range r.s.cartItems {
		if item.ProductID == productID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memCartItems) Update(item *cartdomain.CartItem) error {
	if _, ok := r.s.cartItems[item.ID]; !ok {
		return notFound("cart item", item.ID)
	}
	r.s.cartItems[item.ID] = *item
	return nil
}

func (r *memCartItems) Delete(id uint) error {
	if _, ok := r.s.cartItems[id]; !ok {
		return notFound("cart item", id)
	}
	delete(r.s.cartItems, id)
	return nil
}

func (r *memCartItems) DeleteByCartID(cartID uint) error {
	for id, item := range r.s.cartItems {
		if item.CartID == cartID {
			delete(r.s.cartItems, id)
		}
	}
	return nil
}

func (r *memCartItems) DeleteByProductID(productID uint) error {
	for id, item := range r.s.cartItems {
		if item.ProductID == productID {
			delete(r.s.cartItems, id)
		}
	}
	return nil
}

func (r *memCartItems) DeleteAll() error {
	r.s.cartItems = make(map[uint]cartdomain.CartItem)
	return nil
}

// --- orders ---

type memOrders struct{ s *memStore }

func (r *memOrders) Create(o *orderdomain.Order) error {
	if o.ID == 0 {
		o.ID = r.s.nextID()
	}
	if o.Status == "" {
		o.Status = orderdomain.StatusPending
	}
	r.s.orders[o.ID] = *o
	return nil
}

func (r *memOrders) FindByID(id uint) (*orderdomain.Order, error) {
	o, ok := r.s.orders[id]
	if !ok {
		return nil, notFound("order", id)
	}
	return &o, nil
}

func (r *memOrders) FindByUserID(userID uint) ([]orderdomain.Order, error) {
	var out []orderdomain.Order
	for _, o := range r.s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memOrders) FindAll(limit, offset int) ([]orderdomain.Order, error) {
	out := make([]orderdomain.Order, 0, len(r.s.orders))
	for _, o := range r.s.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return window(out, limit, offset), nil
}

func (r *memOrders) Update(o *orderdomain.Order) error {
	if _, ok := r.s.orders[o.ID]; !ok {
		return notFound("order", o.ID)
	}
	r.s.orders[o.ID] = *o
	return nil
}

func (r *memOrders) Delete(id uint) error {
	if _, ok := r.s.orders[id]; !ok {
		return notFound("order", id)
	}
	delete(r.s.orders, id)
	return nil
}

func (r *memOrders) DeleteByUserID(userID uint) error {
	for id, o := range r.s.orders {
		if o.UserID == userID {
			delete(r.s.orders, id)
		}
	}
	return nil
}

func (r *memOrders) DeleteAll() error {
	r.s.orders = make(map[uint]orderdomain.Order)
	return nil
}

// --- order items ---

type memOrderItems struct{ s *memStore }

func (r *memOrderItems) Create(item *orderdomain.OrderItem) error {
	if item.ID == 0 {
		item.ID = r.s.nextID()
	}
	r.s.orderItems[item.ID] = *item
	return nil
}

func (r *memOrderItems) FindByID(id uint) (*orderdomain.OrderItem, error) {
	item, ok := r.s.orderItems[id]
	if !ok {
		return nil, notFound("order item", id)
	}
	return &item, nil
}

func (r *memOrderItems) FindByOrderID(orderID uint) ([]orderdomain.OrderItem, error) {
	var out []orderdomain.OrderItem
	for _, item := range r.s.orderItems {
		if item.OrderID == orderID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memOrderItems) FindByProductID(productID uint) ([]orderdomain.OrderItem, error) {
	var out []orderdomain.OrderItem
	for _, item := range r.s.orderItems {
		if item.ProductID == productID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memOrderItems) Update(item *orderdomain.OrderItem) error {
	if _, ok := r.s.orderItems[item.ID]; !ok {
		return notFound("order item", item.ID)
	}
	r.s.orderItems[item.ID] = *item
	return nil
}

func (r *memOrderItems) Delete(id uint) error {
	if _, ok := r.s.orderItems[id]; !ok {
		return notFound("order item", id)
	}
	delete(r.s.orderItems, id)
	return nil
}

func (r *memOrderItems) DeleteByOrderID(orderID uint) error {
	for id, item := range r.s.orderItems {
		if item.OrderID == orderID {
			delete(r.s.orderItems, id)
		}
	}
	return nil
}

func (r *memOrderItems) DeleteByProductID(productID uint) error {
	for id, item := range r.s.orderItems {
		if item.ProductID == productID {
			delete(r.s.orderItems, id)
		}
	}
	return nil
}

func (r *memOrderItems) DeleteAll() error {
	r.s.orderItems = make(map[uint]orderdomain.OrderItem)
	return nil
}

// --- wish lists ---

type memWishLists struct{ s *memStore }

func (r *memWishLists) Create(list *wishlistdomain.WishList) error {
	if list.ID == 0 {
		list.ID = r.s.nextID()
	}
	r.s.wishLists[list.ID] = *list
	return nil
}

func (r *memWishLists) FindByID(id uint) (*wishlistdomain.WishList, error) {
	list, ok := r.s.wishLists[id]
	if !ok {
		return nil, notFound("wish list", id)
	}
	return &list, nil
}

func (r *memWishLists) FindByUserID(userID uint) (*wishlistdomain.WishList, error) {
	for _, list := range r.s.wishLists {
		if list.UserID == userID {
			cp := list
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("wish list for user %d: %w", userID, apperr.ErrNotFound)
}

func (r *memWishLists) Delete(id uint) error {
	if _, ok := r.s.wishLists[id]; !ok {
		return notFound("wish list", id)
	}
	delete(r.s.wishLists, id)
	return nil
}

func (r *memWishLists) DeleteAll() error {
	r.s.wishLists = make(map[uint]wishlistdomain.WishList)
	return nil
}

// --- wish list items ---

type memWishListItems struct{ s *memStore }

func (r *memWishListItems) Create(item *wishlistdomain.WishListItem) error {
	if item.ID == 0 {
		item.ID = r.s.nextID()
	}
	r.s.wishListItems[item.ID] = *item
	return nil
}

func (r *memWishListItems) FindByID(id uint) (*wishlistdomain.WishListItem, error) {
	item, ok := r.s.wishListItems[id]
	if !ok {
		return nil, notFound("wish list item", id)
	}
	return &item, nil
}

func (r *memWishListItems) FindByWishListID(listID uint) ([]wishlistdomain.WishListItem, error) {
	var out []wishlistdomain.WishListItem
	for _, item := range r.s.wishListItems {
		if item.WishListID == listID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memWishListItems) Delete(id uint) error {
	if _, ok := r.s.wishListItems[id]; !ok {
		return notFound("wish list item", id)
	}
	delete(r.s.wishListItems, id)
	return nil
}

func (r *memWishListItems) DeleteByWishListID(listID uint) error {
	for id, item := range r.s.wishListItems {
		if item.WishListID == listID {
			delete(r.s.wishListItems, id)
		}
	}
	return nil
}

func (r *memWishListItems) DeleteByProductID(productID uint) error {
	for id, item := range r.s.wishListItems {
		if item.ProductID == productID {
			delete(r.s.wishListItems, id)
		}
	}
	return nil
}

func (r *memWishListItems) DeleteAll() error {
	r.s.wishListItems = make(map[uint]wishlistdomain.WishListItem)
	return nil
}

// --- reviews ---

type memReviews struct{ s *memStore }

func (r *memReviews) Create(rev *reviewdomain.Review) error {
	if rev.ID == 0 {
		rev.ID = r.s.nextID()
	}
	r.s.reviews[rev.ID] = *rev
	return nil
}

func (r *memReviews) FindByID(id uint) (*reviewdomain.Review, error) {
	rev, ok := r.s.reviews[id]
	if !ok {
		return nil, notFound("review", id)
	}
	return &rev, nil
}

func (r *memReviews) FindByProductID(productID uint) ([]reviewdomain.Review, error) {
	var out []reviewdomain.Review
	for _, rev := range r.s.reviews {
		if rev.ProductID == productID {
			out = append(out, rev)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memReviews) FindByUserID(userID uint) ([]reviewdomain.Review, error) {
	var out []reviewdomain.Review
	for _, rev := range r.s.reviews {
		if rev.UserID == userID {
			out = append(out, rev)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memReviews) Update(rev *reviewdomain.Review) error {
	if _, ok := r.s.reviews[rev.ID]; !ok {
		return notFound("review", rev.ID)
	}
	r.s.reviews[rev.ID] = *rev
	return nil
}

func (r *memReviews) Delete(id uint) error {
	if _, ok := r.s.reviews[id]; !ok {
		return notFound("review", id)
	}
	delete(r.s.reviews, id)
	return nil
}

func (r *memReviews) DeleteByUserID(userID uint) error {
	for id, rev := range r.s.reviews {
		if rev.UserID == userID {
			delete(r.s.reviews, id)
		}
	}
	return nil
}

func (r *memReviews) DeleteByProductID(productID uint) error {
	for id, rev := range r.s.reviews {
		if rev.ProductID == productID {
			delete(r.s.reviews, id)
		}
	}
	return nil
}

func (r *memReviews) DeleteAll() error {
	r.s.reviews = make(map[uint]reviewdomain.Review)
	return nil
}

func window[T any](items []T, limit, offset int) []T {
	if offset > 0 {
		if offset >= len(items) {
			return nil
		}
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
