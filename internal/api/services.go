package api

// Service accessors group Client methods by resource.
// Each service embeds *Client to share the entry points.

type AccountService struct{ *Client }

type ReviewsService struct{ *Client }

type ProductsService struct{ *Client }

type OrdersService struct{ *Client }

type GroupsService struct{ *Client }

type QuestionsService struct{ *Client }

func (c *Client) Account() AccountService {
	return AccountService{c}
}

func (c *Client) Reviews() ReviewsService {
	return ReviewsService{c}
}

func (c *Client) Products() ProductsService {
	return ProductsService{c}
}

func (c *Client) Orders() OrdersService {
	return OrdersService{c}
}

func (c *Client) Groups() GroupsService {
	return GroupsService{c}
}

func (c *Client) Questions() QuestionsService {
	return QuestionsService{c}
}
